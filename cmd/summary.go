package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"stockdash"
	"stockdash/renderer"

	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	gbp bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "portfolio headline: value, cash, day change" }
func (*summaryCmd) Usage() string {
	return `sdash summary [-gbp]

  Shows the dashboard headline: total market value, cash balance, day change,
  unrealized and realized P&L, options P&L and total deposited.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.gbp, "gbp", false, "Display amounts in GBP at the current rate.")
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	snap, err := store.FetchSnapshot(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	portfolio, err := snap.DashboardPortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	summary, err := snap.Dashboard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing summary: %v\n", err)
		return subcommands.ExitFailure
	}

	totals := portfolio.Totals
	if c.gbp {
		// The engine works in USD; conversion is display-only.
		rate := stockdash.Q(1).Div(snap.USDPerGBP)
		in := func(m stockdash.Money) stockdash.Money { return m.In("GBP", rate) }
		summary.CashBalance = in(summary.CashBalance)
		summary.TotalDeposited = in(summary.TotalDeposited)
		summary.OptionsPremium = in(summary.OptionsPremium)
		summary.DayChange = in(summary.DayChange)
		totals.MarketValue = in(totals.MarketValue)
		totals.TotalCost = in(totals.TotalCost)
		totals.UnrealisedPnl = in(totals.UnrealisedPnl)
		totals.RealisedPnl = in(totals.RealisedPnl)
	}

	printMarkdown(renderer.SummaryMarkdown(summary, totals))
	return subcommands.ExitSuccess
}
