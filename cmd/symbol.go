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

type symbolCmd struct{}

func (*symbolCmd) Name() string     { return "symbol" }
func (*symbolCmd) Synopsis() string { return "single-symbol page: position, trades, price history" }
func (*symbolCmd) Usage() string {
	return `sdash symbol <ticker>

  Shows one symbol in detail: the current position, its trade log, and the
  daily closes stored by 'sdash update'.
`
}

func (c *symbolCmd) SetFlags(f *flag.FlagSet) {}

func (c *symbolCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprint(os.Stderr, "Error: expected exactly one ticker argument\n")
		return subcommands.ExitUsageError
	}
	symbol := f.Arg(0)

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
	history, err := store.FetchPriceHistory(ctx, symbol)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching price history: %v\n", err)
		return subcommands.ExitFailure
	}
	portfolio, err := snap.Portfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	var holding *stockdash.PortfolioHolding
	for i := range portfolio.Holdings {
		if portfolio.Holdings[i].Symbol == symbol {
			holding = &portfolio.Holdings[i]
			break
		}
	}

	printMarkdown(renderer.SymbolMarkdown(symbol, holding, snap.TransactionsBySymbol[symbol], history))
	return subcommands.ExitSuccess
}
