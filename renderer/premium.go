package renderer

import (
	"fmt"
	"strings"

	"stockdash"
)

// PremiumMarkdown renders the monthly premium and collateral buckets of one
// calendar year, January through December.
func PremiumMarkdown(months []stockdash.MonthlyPremium, year int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Premium by Month %d\n\n", year)
	fmt.Fprintln(&b, "| Month | Premium | Collateral |")
	fmt.Fprintln(&b, "|:---|---:|---:|")

	total := stockdash.USD(0)
	for _, m := range months {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", m.Month.String()[:3], m.Premium, m.Collateral)
		total = total.Add(m.Premium)
	}
	fmt.Fprintf(&b, "| **Total** | **%s** | |\n", total)

	return b.String()
}
