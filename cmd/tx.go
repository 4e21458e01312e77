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

// txCmd holds the flags for the 'tx' subcommand.
type txCmd struct {
	symbol string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "trade log, newest first" }
func (*txCmd) Usage() string {
	return `sdash tx [-symbol <ticker>]

  Shows every stock transaction, newest first, optionally filtered to one
  symbol.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Only show transactions for this symbol.")
}

func (c *txCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	var txs []stockdash.Transaction
	if c.symbol != "" {
		txs = snap.TransactionsBySymbol[c.symbol]
	} else {
		for _, symbolTxs := range snap.TransactionsBySymbol {
			txs = append(txs, symbolTxs...)
		}
	}

	printMarkdown(renderer.TransactionsMarkdown(txs))
	return subcommands.ExitSuccess
}
