package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/smartsip/portfolio"
)

// sellCmd holds the flags for the 'sell' subcommand.
type sellCmd struct {
	date     string
	symbol   string
	quantity float64
	price    float64
	force    bool
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record the sale of a security" }
func (*sellCmd) Usage() string {
	return `sip sell -s <symbol> -q <quantity> -p <price> [-d <date>] [-force]

  Records a sell transaction in the ledger. The proceeds are added to
  the cash balance and will fund future purchases. Selling more than the
  current position is rejected unless -force is given.

Usage Examples:
$ sip sell -s AAPL -q 5 -p 175.50
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", portfolio.Today().String(), "Date of the sale.")
	f.StringVar(&c.symbol, "s", "", "Ticker symbol of the security.")
	f.Float64Var(&c.quantity, "q", 0, "Number of units sold.")
	f.Float64Var(&c.price, "p", 0, "Price received per unit.")
	f.BoolVar(&c.force, "force", false, "Record the sale even if it exceeds the current position.")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := portfolio.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	tx := portfolio.NewSell(day, c.symbol, portfolio.Q(c.quantity), portfolio.M(c.price))
	if err := tx.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	if !c.force {
		s := portfolio.NewSnapshot(ledger.Transactions(), portfolio.PriceMap{})
		held, _ := s.Holding(tx.Symbol)
		if held.Quantity.LessThan(tx.Quantity) {
			fmt.Fprintf(os.Stderr, "Error: selling %s %s but only %s held; use -force to record it anyway\n",
				tx.Quantity, tx.Symbol, held.Quantity)
			return subcommands.ExitUsageError
		}
	}

	ledger.Add(tx)
	if err := saveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Sold %s %s at %s on %s (%s)\n", tx.Quantity, tx.Symbol, tx.Price, tx.Date, tx.Cost())
	return subcommands.ExitSuccess
}
