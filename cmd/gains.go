package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"stockdash"
	"stockdash/renderer"

	"github.com/google/subcommands"
)

// gainsCmd holds the flags for the 'gains' subcommand.
type gainsCmd struct {
	cutover string
}

func (*gainsCmd) Name() string     { return "gains" }
func (*gainsCmd) Synopsis() string { return "realized capital gains per fiscal year (FIFO)" }
func (*gainsCmd) Usage() string {
	return `sdash gains [-cutover <MM-DD>]

  Calculates realized capital gains per fiscal year using chronological (FIFO)
  lot consumption, the tax-reporting view. The fiscal year starts on the
  cut-over day, 04-06 (UK) by default.
`
}

func (c *gainsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.cutover, "cutover", "04-06", "Fiscal year cut-over day as MM-DD.")
}

func (c *gainsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := time.Parse("01-02", c.cutover)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing cut-over %q, want MM-DD: %v\n", c.cutover, err)
		return subcommands.ExitUsageError
	}
	cutover := stockdash.FiscalYearCutover{Month: t.Month(), Day: t.Day()}

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

	years, err := stockdash.ComputeRealisedGainsByFiscalYear(snap.TransactionsBySymbol, cutover)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error calculating gains: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.GainsMarkdown(years))
	return subcommands.ExitSuccess
}
