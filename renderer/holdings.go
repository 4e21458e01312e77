// Package renderer turns engine results into markdown reports for the
// terminal. It holds no computation: every figure arrives ready to print.
package renderer

import (
	"fmt"
	"strings"

	"stockdash"
)

// HoldingsMarkdown renders the holdings table with portfolio totals.
func HoldingsMarkdown(result stockdash.PortfolioResult) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Holdings\n\n")
	fmt.Fprintln(&b, "| Symbol | Name | Shares | Avg Cost | Price | Market Value | Unrealized | Realized | Weight |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|---:|---:|---:|")

	for _, h := range result.Holdings {
		if h.Shares.IsZero() && h.RealisedPnl.IsZero() {
			continue
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			h.Symbol,
			h.Name,
			h.Shares,
			h.AvgCost,
			h.CurrentPrice,
			h.MarketValue,
			h.UnrealisedPnl.SignedString(),
			h.RealisedPnl.SignedString(),
			h.Weight,
		)
	}
	fmt.Fprintf(&b, "| **%s** | | | | | **%s** | **%s** | **%s** | |\n",
		"Total",
		result.Totals.MarketValue,
		result.Totals.UnrealisedPnl.SignedString(),
		result.Totals.RealisedPnl.SignedString(),
	)

	return b.String()
}
