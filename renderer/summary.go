package renderer

import (
	"fmt"
	"strings"

	"stockdash"
)

// SummaryMarkdown renders the dashboard headline.
func SummaryMarkdown(s stockdash.DashboardSummary, totals stockdash.PortfolioTotals) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Portfolio Summary\n\n")
	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Market Value | %s |\n", totals.MarketValue)
	fmt.Fprintf(&b, "| Cash | %s |\n", s.CashBalance)
	fmt.Fprintf(&b, "| Day Change | %s (%s) |\n", s.DayChange.SignedString(), s.DayChangePct.SignedString())
	fmt.Fprintf(&b, "| Unrealized P&L | %s |\n", totals.UnrealisedPnl.SignedString())
	fmt.Fprintf(&b, "| Realized P&L | %s |\n", totals.RealisedPnl.SignedString())
	fmt.Fprintf(&b, "| Options P&L | %s |\n", s.OptionsPremium.SignedString())
	fmt.Fprintf(&b, "| Total Deposited | %s |\n", s.TotalDeposited)

	return b.String()
}
