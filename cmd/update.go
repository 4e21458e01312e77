package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type updateCmd struct{}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "sync latest prices into the record store" }
func (*updateCmd) Usage() string {
	return `sdash update

  Fetches a live quote for every tracked symbol and writes current price,
  previous close, day change and fundamentals back to the record store.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {}

func (c *updateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := store.SyncPrices(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error syncing prices: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
