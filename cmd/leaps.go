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

type leapsCmd struct{}

func (*leapsCmd) Name() string     { return "leaps" }
func (*leapsCmd) Synopsis() string { return "long-option decay analytics" }
func (*leapsCmd) Usage() string {
	return `sdash leaps

  Shows intrinsic and extrinsic value, time-decay rate, fee drag and leverage
  for every long-dated option position, valued at the last synced prices.
`
}

func (c *leapsCmd) SetFlags(f *flag.FlagSet) {}

func (c *leapsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	rows := stockdash.ComputeLeapsRows(snap.Options, snap.Prices(), stockdash.Today())

	printMarkdown(renderer.LeapsMarkdown(rows))
	return subcommands.ExitSuccess
}
