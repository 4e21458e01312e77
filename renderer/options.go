package renderer

import (
	"fmt"
	"strings"

	"stockdash"
)

// OptionsMarkdown renders the chain-aware options table and the headline
// stats. Multi-leg chain heads show cumulative figures; their legs are
// indented underneath.
func OptionsMarkdown(rows []stockdash.OptionsRow, stats stockdash.OptionsStats, asOf stockdash.Date) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Options\n\n")
	fmt.Fprintf(&b, "Total P&L: **%s** (short %s, long %s), commission %s, win rate %s over %d closed, avg %.0f days held\n\n",
		stats.TotalPnl.SignedString(),
		stats.ShortPnl.SignedString(),
		stats.LongPnl.SignedString(),
		stats.TotalCommission,
		stats.WinRate,
		stats.ClosedCount,
		stats.AvgDaysHeld,
	)

	fmt.Fprintln(&b, "| Ticker | Strategy | Type | Opened | Status | Premium | Profit | Return | Days |")
	fmt.Fprintln(&b, "|:---|:---|:---|:---|:---|---:|---:|---:|---:|")

	for _, row := range rows {
		printOptionRow(&b, row, asOf, "")
		for _, sub := range row.SubRows {
			printOptionRow(&b, sub, asOf, "↳ ")
		}
	}

	return b.String()
}

func printOptionRow(b *strings.Builder, row stockdash.OptionsRow, asOf stockdash.Date, indent string) {
	o := row.Option

	ticker := indent + o.Ticker
	if row.ChainHead {
		ticker = fmt.Sprintf("%s (%d-leg roll)", ticker, row.ChainLength)
	}

	profit := "-"
	if row.ChainHead && row.CumulativeProfit != nil {
		profit = row.CumulativeProfit.SignedString()
	} else if p, ok := o.Profit(); ok {
		profit = p.SignedString()
	}

	premium := o.GrossPremium().String()
	if row.ChainHead && row.CumulativePremium != nil {
		premium = row.CumulativePremium.String()
	}

	ret := "-"
	if pct, ok := o.ReturnPct(); ok {
		ret = pct.SignedString()
	}

	fmt.Fprintf(b, "| %s | %s | %s | %s | %s | %s | %s | %s | %d |\n",
		ticker,
		o.Strategy,
		o.CallPut,
		o.Opened,
		o.Status,
		premium,
		profit,
		ret,
		o.DaysHeld(asOf),
	)
}
