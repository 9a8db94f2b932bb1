package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/smartsip/portfolio"
	"github.com/smartsip/portfolio/date"
)

type resetCmd struct {
	force  bool
	sample bool
	prices bool
	undo   bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "clear the ledger, or reload the sample portfolio" }
func (*resetCmd) Usage() string {
	return `sip reset -f [-sample] [-prices] [-undo]

  Clears every transaction from the ledger. With -sample, the ledger is
  reloaded with a small demo portfolio instead of being left empty.
  With -prices, the cached prices are discarded too. With -undo, the
  undo history is dropped as well; otherwise the previous ledger can be
  restored with undo.
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "Confirm the reset.")
	f.BoolVar(&c.sample, "sample", false, "Reload the demo portfolio instead of an empty ledger.")
	f.BoolVar(&c.prices, "prices", false, "Also discard the cached prices.")
	f.BoolVar(&c.undo, "undo", false, "Also drop the undo history.")
}

func (c *resetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.force {
		fmt.Fprintln(os.Stderr, "Error: reset discards the ledger, pass -f to confirm")
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	ledger.Clear(c.undo)
	if c.sample {
		ledger.Add(sampleTransactions()...)
	}

	if c.undo {
		// Dropping the undo history: no backup of the old ledger either.
		if err := os.RemoveAll(backupDir()); err != nil {
			fmt.Fprintf(os.Stderr, "Error dropping undo history: %v\n", err)
			return subcommands.ExitFailure
		}
		err = portfolio.SaveLedger(*ledgerFile, ledger)
	} else {
		err = saveLedger(ledger)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.prices {
		if err := os.Remove(*priceCacheFile); err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error discarding cached prices: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println("Discarded the cached prices")
	}
	if c.sample {
		fmt.Printf("Reloaded the demo portfolio (%d transactions)\n", ledger.Len())
	} else {
		fmt.Println("Cleared the ledger")
	}
	return subcommands.ExitSuccess
}

// sampleTransactions builds the demo portfolio used by reset -sample.
func sampleTransactions() []portfolio.Transaction {
	return []portfolio.Transaction{
		portfolio.NewBuy(date.MustParse("2023-01-15"), "AAPL", portfolio.Q(10), portfolio.M(150)),
		portfolio.NewBuy(date.MustParse("2023-02-20"), "MSFT", portfolio.Q(5), portfolio.M(250)),
		portfolio.NewBuy(date.MustParse("2023-03-15"), "AAPL", portfolio.Q(10), portfolio.M(155)),
	}
}
