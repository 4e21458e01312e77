package renderer

import (
	"strings"
	"testing"

	"stockdash"
)

func date(t *testing.T, s string) stockdash.Date {
	t.Helper()
	d, err := stockdash.ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q) failed: %v", s, err)
	}
	return d
}

func wantContains(t *testing.T, md string, fragments ...string) {
	t.Helper()
	for _, fragment := range fragments {
		if !strings.Contains(md, fragment) {
			t.Errorf("output missing %q in:\n%s", fragment, md)
		}
	}
}

func TestHoldingsMarkdown(t *testing.T) {
	result, err := stockdash.ComputePortfolio(map[string]stockdash.SymbolInput{
		"ACME": {
			Transactions: []stockdash.Transaction{{
				Symbol: "ACME", Type: stockdash.Buy,
				Shares: stockdash.Q(10), Price: stockdash.USD(100),
				Date: date(t, "2024-01-01"),
			}},
			CurrentPrice: stockdash.USD(150),
			Name:         "Acme Corp",
		},
	})
	if err != nil {
		t.Fatalf("ComputePortfolio failed: %v", err)
	}

	md := HoldingsMarkdown(result)
	wantContains(t, md,
		"# Holdings",
		"| ACME | Acme Corp | 10 |",
		"$100.00",
		"+$500.00",   // unrealized
		"| **Total**", // totals row
	)
}

func TestGainsMarkdown(t *testing.T) {
	md := GainsMarkdown([]stockdash.FiscalYearGain{{
		FiscalYear:     "2024/25",
		SellCount:      3,
		TotalProceeds:  stockdash.USD(2250),
		TotalCostBasis: stockdash.USD(1600),
		RealisedPnl:    stockdash.USD(650),
	}})
	wantContains(t, md, "| 2024/25 | 3 |", "$2,250.00", "+$650.00")

	empty := GainsMarkdown(nil)
	wantContains(t, empty, "No realized gains yet.")
}

func TestOptionsMarkdown(t *testing.T) {
	close := stockdash.USD(0.50)
	closeDate := date(t, "2024-02-01")
	collateral := stockdash.USD(18000)
	a := stockdash.OptionPosition{
		Ticker: "X", Strategy: stockdash.Wheel, CallPut: stockdash.Put,
		Qty: stockdash.Q(1), Strike: stockdash.USD(180), Premium: stockdash.USD(3.50),
		Opened: date(t, "2024-01-05"), Expiration: date(t, "2024-03-15"),
		Status: stockdash.StatusRolled, CloseDate: &closeDate,
		ClosePremium: &close, Collateral: &collateral,
	}
	b := stockdash.OptionPosition{
		Ticker: "X", Strategy: stockdash.Wheel, CallPut: stockdash.Put,
		Qty: stockdash.Q(1), Strike: stockdash.USD(175), Premium: stockdash.USD(2.50),
		Opened: date(t, "2024-02-01"), Expiration: date(t, "2024-04-19"),
		Status: stockdash.StatusOpen,
	}

	options := []stockdash.OptionPosition{a, b}
	rows := stockdash.BuildOptionsRows(options)
	stats := stockdash.ComputeOptionsStats(options, nil, date(t, "2024-06-01"))

	md := OptionsMarkdown(rows, stats, date(t, "2024-06-01"))
	wantContains(t, md,
		"# Options",
		"(2-leg roll)", // chain head marker
		"↳ X",          // indented leg
		"$600.00",      // cumulative premium 350 + 250
	)
}

func TestLeapsMarkdown(t *testing.T) {
	o := stockdash.OptionPosition{
		Ticker: "ACME", Strategy: stockdash.LEAPS, CallPut: stockdash.Call,
		Qty: stockdash.Q(2), Strike: stockdash.USD(150), Premium: stockdash.USD(12.50),
		Opened: date(t, "2024-01-15"), Expiration: date(t, "2025-06-20"),
		Status: stockdash.StatusOpen,
	}

	// Without a price the derived columns degrade to "-".
	rows := stockdash.ComputeLeapsRows([]stockdash.OptionPosition{o}, nil, date(t, "2025-05-21"))
	md := LeapsMarkdown(rows)
	wantContains(t, md, "# Long Options", "| ACME |", "$2,500.00", "| - |")
}

func TestPremiumMarkdown(t *testing.T) {
	months := stockdash.BuildPremiumByMonth(nil, 2024)
	md := PremiumMarkdown(months, 2024)
	wantContains(t, md, "# Premium by Month 2024", "| Jan |", "| Dec |", "| **Total** |")
}

func TestTransactionsMarkdown(t *testing.T) {
	txs := []stockdash.Transaction{
		{Symbol: "ACME", Type: stockdash.Buy, Shares: stockdash.Q(10), Price: stockdash.USD(100), Date: date(t, "2024-01-01")},
		{Symbol: "ACME", Type: stockdash.Sell, Shares: stockdash.Q(5), Price: stockdash.USD(120), Date: date(t, "2024-03-01")},
	}
	md := TransactionsMarkdown(txs)
	wantContains(t, md, "# Transactions", "| 2024-03-01 | ACME | Sell | 5 |", "$600.00")

	// Newest first.
	if strings.Index(md, "2024-03-01") > strings.Index(md, "2024-01-01") {
		t.Errorf("transactions not sorted newest first:\n%s", md)
	}

	empty := TransactionsMarkdown(nil)
	wantContains(t, empty, "No transactions yet.")
}

func TestSymbolMarkdown(t *testing.T) {
	h := stockdash.PortfolioHolding{
		Symbol: "ACME", Name: "Acme Corp", CurrentPrice: stockdash.USD(150),
		Holding: stockdash.Holding{
			Shares: stockdash.Q(10), AvgCost: stockdash.USD(100),
			TotalCost: stockdash.USD(1000), MarketValue: stockdash.USD(1500),
			UnrealisedPnl: stockdash.USD(500), RealisedPnl: stockdash.USD(0),
		},
	}
	txs := []stockdash.Transaction{
		{Symbol: "ACME", Type: stockdash.Buy, Shares: stockdash.Q(10), Price: stockdash.USD(100), Date: date(t, "2024-01-05")},
	}
	history := []stockdash.PricePoint{
		{Date: date(t, "2024-03-14"), Close: stockdash.USD(148)},
		{Date: date(t, "2024-03-15"), Close: stockdash.USD(150)},
	}

	md := SymbolMarkdown("ACME", &h, txs, history)
	wantContains(t, md,
		"# ACME",
		"Acme Corp",
		"| Shares | 10 |",
		"## Transactions",
		"| 2024-01-05 | Buy | 10 |",
		"## Price History",
		"| 2024-03-15 | $150.00 |",
	)

	// Newest close first.
	if strings.Index(md, "2024-03-15 | $150.00") > strings.Index(md, "2024-03-14") {
		t.Errorf("history not newest first:\n%s", md)
	}

	none := SymbolMarkdown("GLOBEX", nil, nil, nil)
	wantContains(t, none, "# GLOBEX", "No position.")
}

func TestHoldingsMarkdown_DashboardRows(t *testing.T) {
	row := func(symbol, name string, kind stockdash.HoldingKind, shares int, value stockdash.Money) stockdash.PortfolioHolding {
		return stockdash.PortfolioHolding{
			Symbol: symbol, Name: name, Kind: kind, CurrentPrice: value,
			Holding: stockdash.Holding{
				Shares: stockdash.Q(shares), AvgCost: value, TotalCost: value,
				MarketValue: value, UnrealisedPnl: stockdash.USD(0), RealisedPnl: stockdash.USD(0),
			},
		}
	}
	result := stockdash.PortfolioResult{
		Holdings: []stockdash.PortfolioHolding{
			row("ACME", "Acme Corp (LEAPS)", stockdash.OptionRow, 2, stockdash.USD(2500)),
			row("CASH", "Cash", stockdash.CashRow, 1, stockdash.USD(1000)),
		},
		Totals: stockdash.PortfolioTotals{
			MarketValue:   stockdash.USD(3500),
			TotalCost:     stockdash.USD(3500),
			UnrealisedPnl: stockdash.USD(0),
			RealisedPnl:   stockdash.USD(0),
		},
	}
	md := HoldingsMarkdown(result)
	wantContains(t, md, "Acme Corp (LEAPS)", "| CASH | Cash | 1 |", "$2,500.00")
}

func TestSummaryMarkdown(t *testing.T) {
	md := SummaryMarkdown(stockdash.DashboardSummary{
		CashBalance:    stockdash.USD(1500),
		TotalDeposited: stockdash.USD(20000),
		OptionsPremium: stockdash.USD(500),
		DayChange:      stockdash.USD(30),
		DayChangePct:   stockdash.Percent(1),
	}, stockdash.PortfolioTotals{
		MarketValue:   stockdash.USD(3000),
		UnrealisedPnl: stockdash.USD(250),
		RealisedPnl:   stockdash.USD(600),
	})
	wantContains(t, md, "# Portfolio Summary", "$1,500.00", "+$30.00 (+1.00%)", "$20,000.00")
}
