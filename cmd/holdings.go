package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"stockdash/renderer"

	"github.com/google/subcommands"
)

type holdingsCmd struct{}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "per-symbol positions with average-cost P&L" }
func (*holdingsCmd) Usage() string {
	return `sdash holdings

  Shows every position with its weighted-average cost, market value,
  unrealized and realized P&L, and weight in the portfolio. Open bought
  options appear at cost basis and the cash balance as a CASH row.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {}

func (c *holdingsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.HoldingsMarkdown(portfolio))
	return subcommands.ExitSuccess
}
