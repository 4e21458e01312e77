package stockdash

import (
	"testing"

	"stockdash/nocodb"
)

func TestConvertTransaction(t *testing.T) {
	rec := nocodb.TransactionRecord{
		Id:     7,
		Symbol: "ACME",
		Type:   "Buy",
		Price:  100.5,
		Shares: 10,
		Amount: -9999, // stored amounts are untrusted and ignored
		Date:   "2024-01-05",
	}
	tx, err := ConvertTransaction(rec)
	if err != nil {
		t.Fatalf("ConvertTransaction failed: %v", err)
	}
	checkMoney(t, "Amount", tx.Amount(), USD(1005)) // derived, not read
	if !tx.Date.Equal(day(t, "2024-01-05")) {
		t.Errorf("Date = %s", tx.Date)
	}
}

func TestConvertTransaction_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		rec  nocodb.TransactionRecord
	}{
		{"bad type", nocodb.TransactionRecord{Id: 1, Symbol: "A", Type: "Hold", Price: 1, Shares: 1, Date: "2024-01-01"}},
		{"bad date", nocodb.TransactionRecord{Id: 2, Symbol: "A", Type: "Buy", Price: 1, Shares: 1, Date: "yesterday"}},
		{"zero shares", nocodb.TransactionRecord{Id: 3, Symbol: "A", Type: "Buy", Price: 1, Shares: 0, Date: "2024-01-01"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ConvertTransaction(tc.rec); err == nil {
				t.Errorf("ConvertTransaction accepted %s", tc.name)
			}
		})
	}
}

func TestConvertTransactions_GroupsBySymbol(t *testing.T) {
	recs := []nocodb.TransactionRecord{
		{Id: 1, Symbol: "ACME", Type: "Buy", Price: 100, Shares: 10, Date: "2024-01-05"},
		{Id: 2, Symbol: "ZETA", Type: "Buy", Price: 50, Shares: 5, Date: "2024-01-06"},
		{Id: 3, Symbol: "ACME", Type: "Sell", Price: 120, Shares: 5, Date: "2024-02-01"},
	}
	bySymbol, err := ConvertTransactions(recs)
	if err != nil {
		t.Fatalf("ConvertTransactions failed: %v", err)
	}
	if len(bySymbol["ACME"]) != 2 || len(bySymbol["ZETA"]) != 1 {
		t.Errorf("grouping wrong: %d ACME, %d ZETA", len(bySymbol["ACME"]), len(bySymbol["ZETA"]))
	}
}

func TestConvertOption(t *testing.T) {
	closeDate := "2024-02-15"
	closePremium := 0.5
	collateral := 18000.0
	rec := nocodb.OptionRecord{
		Id:           11,
		Ticker:       "ACME",
		Opened:       "2024-01-15",
		StrategyType: "Wheel",
		CallPut:      "Put",
		BuySell:      "Sell",
		Expiration:   "2024-03-15",
		Strike:       180,
		Qty:          1,
		Premium:      3.5,
		Status:       "Closed",
		CloseDate:    &closeDate,
		ClosePremium: &closePremium,
		Collateral:   &collateral,
	}
	o, err := ConvertOption(rec)
	if err != nil {
		t.Fatalf("ConvertOption failed: %v", err)
	}
	profit, ok := o.Profit()
	if !ok {
		t.Fatal("converted option has no profit")
	}
	checkMoney(t, "Profit", profit, USD(300))
}

func TestConvertOption_Invalid(t *testing.T) {
	base := nocodb.OptionRecord{
		Id: 1, Ticker: "A", Opened: "2024-01-15", StrategyType: "Wheel",
		CallPut: "Put", Expiration: "2024-03-15", Strike: 100, Qty: 1,
		Premium: 1, Status: "Open",
	}

	bad := base
	bad.StrategyType = "Butterfly"
	if _, err := ConvertOption(bad); err == nil {
		t.Error("accepted unknown strategy")
	}

	bad = base
	bad.Status = "Pending"
	if _, err := ConvertOption(bad); err == nil {
		t.Error("accepted unknown status")
	}

	bad = base
	bad.Opened = "soon"
	if _, err := ConvertOption(bad); err == nil {
		t.Error("accepted unparseable opened date")
	}
}

func TestConvertDeposit(t *testing.T) {
	d, err := ConvertDeposit(nocodb.DepositRecord{Id: 1, Month: "2024-03", Amount: 1000}, Q(1.25))
	if err != nil {
		t.Fatalf("ConvertDeposit failed: %v", err)
	}
	checkMoney(t, "Amount", d.Amount, USD(1250)) // 1000 GBP × 1.25
	if !d.Date.Equal(day(t, "2024-03-01")) {
		t.Errorf("Date = %s, want first of month", d.Date)
	}

	if _, err := ConvertDeposit(nocodb.DepositRecord{Id: 2, Month: "March"}, Q(1)); err == nil {
		t.Error("accepted unparseable month")
	}
}

func TestConvertPricePoint(t *testing.T) {
	p, err := ConvertPricePoint(nocodb.PriceHistoryRecord{Id: 1, Symbol: "ACME", Date: "2024-03-15", ClosePrice: 151.25})
	if err != nil {
		t.Fatalf("ConvertPricePoint failed: %v", err)
	}
	checkMoney(t, "Close", p.Close, USD(151.25))
	if !p.Date.Equal(day(t, "2024-03-15")) {
		t.Errorf("Date = %s, want 2024-03-15", p.Date)
	}

	if _, err := ConvertPricePoint(nocodb.PriceHistoryRecord{Id: 2, Symbol: "ACME", Date: "yesterday"}); err == nil {
		t.Error("accepted unparseable date")
	}
	if _, err := ConvertPricePoint(nocodb.PriceHistoryRecord{Id: 3, Symbol: "ACME", Date: "2024-03-15", ClosePrice: -1}); err == nil {
		t.Error("accepted negative close")
	}
}
