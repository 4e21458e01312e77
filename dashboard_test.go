package stockdash

import "testing"

func TestComputeCashBalance(t *testing.T) {
	deposits := []Deposit{
		{Amount: USD(10000), Date: day(t, "2024-01-01")},
		{Amount: USD(5000), Date: day(t, "2024-02-01")},
	}
	dividends := []Dividend{
		{Symbol: "ACME", Amount: USD(120), Date: day(t, "2024-03-15")},
	}
	txs := []Transaction{
		buyTx(t, "ACME", 10, 100, "2024-01-05"),
		sellTx(t, "ACME", 5, 150, "2024-04-01"),
	}

	short := wheelPut(t) // sold 3.50, bought back 0.50, 1 contract

	long := leapsCall(t) // bought 12.50, 2 contracts, still open
	long.Commission = nil

	cash := ComputeCashBalance(deposits, dividends, txs, []OptionPosition{short, long})

	// 15000 − 1000 + 750 + 120 + 350 − 50 − 2500
	checkMoney(t, "cash", cash, USD(12670))
}

func TestComputeDashboardPortfolio(t *testing.T) {
	stocks, err := ComputePortfolio(map[string]SymbolInput{
		"ACME": {
			Transactions: []Transaction{buyTx(t, "ACME", 10, 100, "2024-01-05")},
			CurrentPrice: USD(150),
			Name:         "Acme Corp",
		},
	})
	if err != nil {
		t.Fatalf("ComputePortfolio() failed: %v", err)
	}

	open := leapsCall(t) // bought 12.50, 2 contracts, still open: cost 2500
	closed := wheelPut(t)

	result := ComputeDashboardPortfolio(stocks, []OptionPosition{open, closed}, USD(1000))

	// Stock row, one option row (closed short positions are excluded), cash row.
	if len(result.Holdings) != 3 {
		t.Fatalf("got %d holdings, want 3: %+v", len(result.Holdings), result.Holdings)
	}

	opt := result.Holdings[1]
	if opt.Kind != OptionRow {
		t.Errorf("Kind = %q, want OptionRow", opt.Kind)
	}
	if opt.Name != "Acme Corp (LEAPS)" {
		t.Errorf("Name = %q, want strategy-suffixed stock name", opt.Name)
	}
	checkMoney(t, "option AvgCost", opt.AvgCost, USD(1250))
	checkMoney(t, "option TotalCost", opt.TotalCost, USD(2500))
	checkMoney(t, "option MarketValue", opt.MarketValue, USD(2500)) // valued at cost
	checkMoney(t, "option UnrealisedPnl", opt.UnrealisedPnl, USD(0))

	cash := result.Holdings[2]
	if cash.Kind != CashRow || cash.Symbol != "CASH" {
		t.Errorf("cash row = %+v", cash)
	}
	checkMoney(t, "cash MarketValue", cash.MarketValue, USD(1000))

	// Option cost joins the totals; cash does not.
	checkMoney(t, "Totals.MarketValue", result.Totals.MarketValue, USD(4000))
	checkMoney(t, "Totals.TotalCost", result.Totals.TotalCost, USD(3500))

	// Weights over 1500 + 2500 + 1000.
	if !result.Holdings[0].Weight.Equal(Percent(30)) {
		t.Errorf("stock weight = %s, want 30%%", result.Holdings[0].Weight)
	}
	if !opt.Weight.Equal(Percent(50)) {
		t.Errorf("option weight = %s, want 50%%", opt.Weight)
	}
	if !cash.Weight.Equal(Percent(20)) {
		t.Errorf("cash weight = %s, want 20%%", cash.Weight)
	}
}

func TestComputeDashboardPortfolio_NegativeCash(t *testing.T) {
	result := ComputeDashboardPortfolio(PortfolioResult{Totals: PortfolioTotals{
		MarketValue:   USD(1000),
		TotalCost:     USD(800),
		UnrealisedPnl: USD(200),
		RealisedPnl:   USD(0),
	}, Holdings: []PortfolioHolding{{Symbol: "ACME", Holding: Holding{MarketValue: USD(1000)}}}},
		nil, USD(-200))

	// Margin debt shows as a row but never widens the weight denominator.
	if len(result.Holdings) != 2 {
		t.Fatalf("got %d holdings, want stock + cash", len(result.Holdings))
	}
	if !result.Holdings[0].Weight.Equal(Percent(100)) {
		t.Errorf("stock weight = %s, want 100%%", result.Holdings[0].Weight)
	}
}

func TestComputeDashboardSummary(t *testing.T) {
	portfolio, err := ComputePortfolio(map[string]SymbolInput{
		"ACME": {
			Transactions: []Transaction{buyTx(t, "ACME", 10, 100, "2024-01-05")},
			CurrentPrice: USD(150),
		},
	})
	if err != nil {
		t.Fatalf("ComputePortfolio() failed: %v", err)
	}

	closed := wheelPut(t)
	open := wheelPut(t)
	open.Status = StatusOpen
	open.ClosePremium = nil
	open.CloseDate = nil
	open.Premium = USD(2.00)

	in := DashboardInput{
		Portfolio:    portfolio,
		Deposits:     []Deposit{{Amount: USD(2000), Date: day(t, "2024-01-01")}},
		Transactions: []Transaction{buyTx(t, "ACME", 10, 100, "2024-01-05")},
		Options:      []OptionPosition{closed, open},
		ChangePct:    map[string]Percent{"ACME": 2},
	}

	s := ComputeDashboardSummary(in)

	checkMoney(t, "TotalDeposited", s.TotalDeposited, USD(2000))
	checkMoney(t, "OptionsPremium", s.OptionsPremium, USD(500)) // 300 closed + 200 open credit
	checkMoney(t, "DayChange", s.DayChange, USD(30))            // 1500 × 2%

	// cash: 2000 − 1000 + 300 + 200 = 1500; denominator 1500 + 1500.
	checkMoney(t, "CashBalance", s.CashBalance, USD(1500))
	if !s.DayChangePct.Equal(Percent(1)) {
		t.Errorf("DayChangePct = %s, want 1.00%%", s.DayChangePct)
	}
}

func TestComputeDashboardSummary_OptionRowsSkipDayChange(t *testing.T) {
	stocks, err := ComputePortfolio(map[string]SymbolInput{
		"ACME": {
			Transactions: []Transaction{buyTx(t, "ACME", 10, 100, "2024-01-05")},
			CurrentPrice: USD(150),
		},
	})
	if err != nil {
		t.Fatalf("ComputePortfolio() failed: %v", err)
	}
	open := leapsCall(t) // same ticker as the stock position
	portfolio := ComputeDashboardPortfolio(stocks, []OptionPosition{open}, USD(0))

	s := ComputeDashboardSummary(DashboardInput{
		Portfolio: portfolio,
		Options:   []OptionPosition{open},
		ChangePct: map[string]Percent{"ACME": 2},
	})

	// Only the stock's 1500 moves with the quote; the option row at cost
	// shares the ticker but has no quote of its own.
	checkMoney(t, "DayChange", s.DayChange, USD(30))
}
