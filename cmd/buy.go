package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/smartsip/portfolio"
)

// buyCmd holds the flags for the 'buy' subcommand.
type buyCmd struct {
	date     string
	symbol   string
	quantity float64
	price    float64
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record the purchase of a security" }
func (*buyCmd) Usage() string {
	return `sip buy -s <symbol> -q <quantity> -p <price> [-d <date>]

  Records a buy transaction in the ledger. The purchase is paid from the
  cash balance first; only the shortfall counts as newly invested money.

Usage Examples:
$ sip buy -s AAPL -q 10 -p 150.25
$ sip buy -s MSFT -q 2.5 -p 310.50 -d 2024-03-15
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", portfolio.Today().String(), "Date of the purchase.")
	f.StringVar(&c.symbol, "s", "", "Ticker symbol of the security.")
	f.Float64Var(&c.quantity, "q", 0, "Number of units bought.")
	f.Float64Var(&c.price, "p", 0, "Price paid per unit.")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := portfolio.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	tx := portfolio.NewBuy(day, c.symbol, portfolio.Q(c.quantity), portfolio.M(c.price))
	if err := tx.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	ledger.Add(tx)
	if err := saveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Bought %s %s at %s on %s (%s)\n", tx.Quantity, tx.Symbol, tx.Price, tx.Date, tx.Cost())
	return subcommands.ExitSuccess
}
