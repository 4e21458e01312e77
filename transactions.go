package stockdash

import (
	"fmt"
	"sort"
)

// TxType is the side of a stock transaction.
type TxType string

const (
	Buy  TxType = "Buy"
	Sell TxType = "Sell"
)

// ParseTxType parses a string into a TxType.
func ParseTxType(s string) (TxType, error) {
	switch s {
	case "Buy":
		return Buy, nil
	case "Sell":
		return Sell, nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// Transaction is a single immutable buy or sell of a stock. Shares and Price
// are exact decimals; Amount is always derived as Shares × Price rather than
// trusted from the record store (migrated rows carry inconsistent signs).
type Transaction struct {
	Symbol string
	Type   TxType
	Shares Quantity
	Price  Money
	Date   Date
}

// Amount returns the gross cash value of the transaction (Shares × Price).
func (t Transaction) Amount() Money { return t.Price.Mul(t.Shares) }

// Validate fails fast on inputs the engine must never accept: non-positive
// share counts and negative prices. Data gaps (e.g. a Sell without a prior
// Buy) are not validation errors; the engine degrades gracefully on those.
func (t Transaction) Validate() error {
	if t.Symbol == "" {
		return fmt.Errorf("transaction has no symbol")
	}
	if t.Type != Buy && t.Type != Sell {
		return fmt.Errorf("transaction %s: unknown type %q", t.Symbol, t.Type)
	}
	if !t.Shares.IsPositive() {
		return fmt.Errorf("transaction %s on %s: shares must be positive, got %s", t.Symbol, t.Date, t.Shares)
	}
	if t.Price.IsNegative() {
		return fmt.Errorf("transaction %s on %s: price must not be negative, got %s", t.Symbol, t.Date, t.Price)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("transaction %s: missing date", t.Symbol)
	}
	return nil
}

// sortedForReplay returns a copy of txs in accounting order: date ascending,
// Buys before Sells on the same date, otherwise stable in insertion order.
// Processing Buys first makes the replay invariant to reordering same-date
// records coming from the store.
func sortedForReplay(txs []Transaction) []Transaction {
	sorted := make([]Transaction, len(txs))
	copy(sorted, txs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Date.Before(sorted[j].Date) && !sorted[j].Date.Before(sorted[i].Date) {
			return sorted[i].Type == Buy && sorted[j].Type == Sell
		}
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}
