package renderer

import (
	"fmt"
	"sort"
	"strings"

	"stockdash"
)

// TransactionsMarkdown renders the trade log, newest first.
func TransactionsMarkdown(txs []stockdash.Transaction) string {
	sorted := make([]stockdash.Transaction, len(txs))
	copy(sorted, txs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	var b strings.Builder
	fmt.Fprintf(&b, "# Transactions\n\n")
	fmt.Fprintf(&b, "| Date | Symbol | Type | Shares | Price | Amount |\n")
	fmt.Fprintf(&b, "|---|---|---|---:|---:|---:|\n")
	for _, tx := range sorted {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			tx.Date,
			tx.Symbol,
			tx.Type,
			tx.Shares,
			tx.Price,
			tx.Amount(),
		)
	}
	if len(sorted) == 0 {
		fmt.Fprint(&b, "\nNo transactions yet.\n")
	}
	return b.String()
}
