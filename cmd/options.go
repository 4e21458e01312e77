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

type optionsCmd struct{}

func (*optionsCmd) Name() string     { return "options" }
func (*optionsCmd) Synopsis() string { return "options table with inferred roll chains" }
func (*optionsCmd) Usage() string {
	return `sdash options

  Shows every option position, with rolled positions linked into chains. Chain
  heads carry the cumulative premium and profit of all their legs.
`
}

func (c *optionsCmd) SetFlags(f *flag.FlagSet) {}

func (c *optionsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	asOf := stockdash.Today()
	rows := stockdash.BuildOptionsRows(snap.Options)
	stats := stockdash.ComputeOptionsStats(snap.Options, snap.Prices(), asOf)

	printMarkdown(renderer.OptionsMarkdown(rows, stats, asOf))
	return subcommands.ExitSuccess
}
