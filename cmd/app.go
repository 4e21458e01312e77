// Package cmd implements the CLI application to inspect the portfolio
// dashboard from the terminal.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"stockdash"
	"stockdash/nocodb"

	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&summaryCmd{}, "reports")
	c.Register(&holdingsCmd{}, "reports")
	c.Register(&gainsCmd{}, "reports")
	c.Register(&optionsCmd{}, "reports")
	c.Register(&leapsCmd{}, "reports")
	c.Register(&premiumCmd{}, "reports")
	c.Register(&txCmd{}, "reports")
	c.Register(&symbolCmd{}, "reports")

	c.Register(&updateCmd{}, "sync")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var nocodbURL = flag.String("nocodb-url", "", "Base URL of the NocoDB instance.\n If missing it will read from the environment variable NOCODB_BASE_URL.")
var nocodbToken = flag.String("nocodb-token", "", "NocoDB API token.\n If missing it will read from the environment variable NOCODB_API_TOKEN.")

// tableEnv maps each logical table to the environment variable holding its
// NocoDB table id, mirroring the base's configuration.
var tableEnv = map[string]string{
	nocodb.TableSymbols:      "NOCODB_TABLE_SYMBOLS",
	nocodb.TableTransactions: "NOCODB_TABLE_TRANSACTIONS",
	nocodb.TableOptions:      "NOCODB_TABLE_OPTIONS",
	nocodb.TableDeposits:     "NOCODB_TABLE_DEPOSITS",
	nocodb.TableDividends:    "NOCODB_TABLE_DIVIDENDS",
	nocodb.TableSettings:     "NOCODB_TABLE_SETTINGS",
	nocodb.TablePriceHistory: "NOCODB_TABLE_PRICE_HISTORY",
}

// OpenStore is the central function to connect to the record store.
func OpenStore() (*stockdash.Store, error) {
	url := *nocodbURL
	if url == "" {
		url = os.Getenv("NOCODB_BASE_URL")
	}
	token := *nocodbToken
	if token == "" {
		token = os.Getenv("NOCODB_API_TOKEN")
	}
	if url == "" || token == "" {
		return nil, fmt.Errorf("record store is not configured: set -nocodb-url and -nocodb-token flags or NOCODB_BASE_URL and NOCODB_API_TOKEN environment variables")
	}

	tables := make(map[string]string, len(tableEnv))
	for table, env := range tableEnv {
		if id := os.Getenv(env); id != "" {
			tables[table] = id
		}
	}
	return &stockdash.Store{DB: nocodb.New(url, token, tables)}, nil
}
