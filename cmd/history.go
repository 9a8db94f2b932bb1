package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/smartsip/portfolio"
	"github.com/smartsip/portfolio/renderer"
)

type historyCmd struct{}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the portfolio valuation over time" }
func (*historyCmd) Usage() string {
	return `sip history

  Replays the ledger day by day from the first transaction to today and
  displays the valuation curve. Past prices are synthetic, anchored at
  the current price.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	prices := loadPrices()
	today := portfolio.Today()
	walk := portfolio.NewRandomWalk(ledger.Symbols(), prices, today)
	points := portfolio.ReconstructHistory(ledger.Transactions(), prices, walk, today)
	printMarkdown(renderer.HistoryMarkdown(points))
	return subcommands.ExitSuccess
}
