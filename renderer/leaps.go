package renderer

import (
	"fmt"
	"strings"

	"stockdash"
)

// LeapsMarkdown renders the long-option decay table. Metrics that could not
// be computed (no live quote) render as "-", never as zero.
func LeapsMarkdown(rows []stockdash.LeapsDisplayRow) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Long Options\n\n")
	fmt.Fprintln(&b, "| Ticker | Strike | Exp | DTE | Cost Basis | Price | P&L | Intrinsic | Extrinsic | Decay/mo | Fee | Leverage |")
	fmt.Fprintln(&b, "|:---|---:|:---|---:|---:|---:|---:|---:|---:|---:|---:|---:|")

	for _, row := range rows {
		o := row.Option
		fmt.Fprintf(&b, "| %s | %s | %s | %d | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			o.Ticker,
			o.Strike,
			o.Expiration,
			row.DaysToExpiry,
			row.CostBasis,
			moneyOrDash(row.CurrentPrice),
			signedOrDash(row.CurrentPnl),
			moneyOrDash(row.IntrinsicValue),
			moneyOrDash(row.ExtrinsicValue),
			moneyOrDash(row.ValueLostPerMonth),
			percentOrDash(row.PremiumFeePct),
			leverageOrDash(row.Leverage),
		)
	}

	return b.String()
}

func moneyOrDash(m *stockdash.Money) string {
	if m == nil {
		return "-"
	}
	return m.String()
}

func signedOrDash(m *stockdash.Money) string {
	if m == nil {
		return "-"
	}
	return m.SignedString()
}

func percentOrDash(p *stockdash.Percent) string {
	if p == nil {
		return "-"
	}
	return p.String()
}

func leverageOrDash(q *stockdash.Quantity) string {
	if q == nil {
		return "-"
	}
	return fmt.Sprintf("%.1fx", q.Display())
}
