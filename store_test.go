package stockdash

import (
	"testing"

	"stockdash/nocodb"
)

func TestSnapshotPortfolio_MissingPriceIsUSD(t *testing.T) {
	snap := &Snapshot{
		Symbols: []nocodb.SymbolRecord{{Symbol: "ACME", Name: "Acme Corp"}},
		TransactionsBySymbol: map[string][]Transaction{
			"ACME":   {buyTx(t, "ACME", 10, 100, "2024-01-05")},
			"GLOBEX": {buyTx(t, "GLOBEX", 5, 50, "2024-02-01")},
		},
	}

	result, err := snap.Portfolio()
	if err != nil {
		t.Fatalf("Portfolio() failed: %v", err)
	}
	if len(result.Holdings) != 2 {
		t.Fatalf("got %d holdings, want 2", len(result.Holdings))
	}
	for _, h := range result.Holdings {
		if h.MarketValue.Currency() != "USD" {
			t.Errorf("%s: MarketValue currency = %q, want USD", h.Symbol, h.MarketValue.Currency())
		}
		checkMoney(t, h.Symbol+" MarketValue", h.MarketValue, USD(0))
	}
	if result.Totals.MarketValue.Currency() != "USD" {
		t.Errorf("Totals.MarketValue currency = %q, want USD", result.Totals.MarketValue.Currency())
	}
}
