package renderer

import (
	"fmt"
	"strings"

	"stockdash"
)

// historyRows caps the price-history table; the full series belongs in a
// chart, not a terminal.
const historyRows = 30

// SymbolMarkdown renders the single-symbol page: the position, its trade log
// and the stored daily closes, newest first.
func SymbolMarkdown(symbol string, holding *stockdash.PortfolioHolding, txs []stockdash.Transaction, history []stockdash.PricePoint) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", symbol)

	if holding == nil {
		fmt.Fprint(&b, "No position.\n")
	} else {
		name := holding.Name
		if name == "" {
			name = symbol
		}
		fmt.Fprintf(&b, "%s\n\n", name)
		fmt.Fprintln(&b, "| | |")
		fmt.Fprintln(&b, "|:---|---:|")
		fmt.Fprintf(&b, "| Shares | %s |\n", holding.Shares)
		fmt.Fprintf(&b, "| Avg Cost | %s |\n", holding.AvgCost)
		fmt.Fprintf(&b, "| Price | %s |\n", holding.CurrentPrice)
		fmt.Fprintf(&b, "| Market Value | %s |\n", holding.MarketValue)
		fmt.Fprintf(&b, "| Unrealized P&L | %s |\n", holding.UnrealisedPnl.SignedString())
		fmt.Fprintf(&b, "| Realized P&L | %s |\n", holding.RealisedPnl.SignedString())
	}

	if len(txs) > 0 {
		fmt.Fprint(&b, "\n## Transactions\n\n")
		fmt.Fprintln(&b, "| Date | Type | Shares | Price | Amount |")
		fmt.Fprintln(&b, "|---|---|---:|---:|---:|")
		for i := len(txs) - 1; i >= 0; i-- {
			tx := txs[i]
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
				tx.Date, tx.Type, tx.Shares, tx.Price, tx.Amount())
		}
	}

	if len(history) > 0 {
		fmt.Fprint(&b, "\n## Price History\n\n")
		fmt.Fprintln(&b, "| Date | Close |")
		fmt.Fprintln(&b, "|---|---:|")
		shown := 0
		for i := len(history) - 1; i >= 0 && shown < historyRows; i-- {
			fmt.Fprintf(&b, "| %s | %s |\n", history[i].Date, history[i].Close)
			shown++
		}
		if len(history) > historyRows {
			fmt.Fprintf(&b, "\n%d older closes not shown.\n", len(history)-historyRows)
		}
	}

	return b.String()
}
