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

type holdingsCmd struct{}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "display the active positions" }
func (*holdingsCmd) Usage() string {
	return `sip holdings

  Displays the active positions with their average cost, current price,
  market value and unrealized return.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {}

func (c *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	s := portfolio.NewSnapshot(ledger.Transactions(), loadPrices())
	printMarkdown(renderer.HoldingsMarkdown(s))
	return subcommands.ExitSuccess
}
