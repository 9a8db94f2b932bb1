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

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the portfolio summary" }
func (*summaryCmd) Usage() string {
	return `sip summary

  Displays the headline figures of the portfolio: invested capital,
  cash balance, stock value, profit and return.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	s := portfolio.NewSnapshot(ledger.Transactions(), loadPrices())
	printMarkdown(renderer.SummaryMarkdown(portfolio.Today(), s))
	return subcommands.ExitSuccess
}
