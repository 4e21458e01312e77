package renderer

import (
	"fmt"
	"strings"

	"stockdash"
)

// GainsMarkdown renders realised capital gains per fiscal year, newest first.
func GainsMarkdown(years []stockdash.FiscalYearGain) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Realized Gains by Fiscal Year\n\n")
	fmt.Fprintln(&b, "| Fiscal Year | Sells | Proceeds | Cost Basis | Realized |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|")

	for _, fy := range years {
		fmt.Fprintf(&b, "| %s | %d | %s | %s | %s |\n",
			fy.FiscalYear,
			fy.SellCount,
			fy.TotalProceeds,
			fy.TotalCostBasis,
			fy.RealisedPnl.SignedString(),
		)
	}
	if len(years) == 0 {
		fmt.Fprint(&b, "\nNo realized gains yet.\n")
	}

	return b.String()
}
