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

// premiumCmd holds the flags for the 'premium' subcommand.
type premiumCmd struct {
	year int
}

func (*premiumCmd) Name() string     { return "premium" }
func (*premiumCmd) Synopsis() string { return "monthly short-option premium and collateral" }
func (*premiumCmd) Usage() string {
	return `sdash premium [-year <year>]

  Buckets the premium collected by short strategies (and the collateral
  committed) into the months of one calendar year, keyed by opening date.
`
}

func (c *premiumCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "year", stockdash.Today().Year(), "Calendar year to report on.")
}

func (c *premiumCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	months := stockdash.BuildPremiumByMonth(snap.Options, c.year)

	printMarkdown(renderer.PremiumMarkdown(months, c.year))
	return subcommands.ExitSuccess
}
