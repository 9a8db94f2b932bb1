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

type txCmd struct {
	symbol string
	head   int
	tail   int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the transactions in the ledger" }
func (*txCmd) Usage() string {
	return `sip tx [-s <symbol>] [-head <n> | -tail <n>]

  Lists the transactions in chronological order, with the ids accepted
  by the delete command. -head keeps only the n oldest transactions,
  -tail the n most recent ones.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Only list transactions for this symbol.")
	f.IntVar(&c.head, "head", 0, "Only list the n oldest transactions.")
	f.IntVar(&c.tail, "tail", 0, "Only list the n most recent transactions.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail are mutually exclusive")
		return subcommands.ExitUsageError
	}
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	txs := ledger.Transactions()
	if c.symbol != "" {
		txs = ledger.BySymbol(c.symbol)
	}
	txs = limitTransactions(txs, c.head, c.tail)
	printMarkdown(renderer.TransactionsMarkdown(portfolio.NewLedger(txs...)))
	return subcommands.ExitSuccess
}

// limitTransactions keeps the head oldest or tail most recent
// transactions. Zero (or negative) limits keep everything.
func limitTransactions(txs []portfolio.Transaction, head, tail int) []portfolio.Transaction {
	if head > 0 && head < len(txs) {
		return txs[:head]
	}
	if tail > 0 && tail < len(txs) {
		return txs[len(txs)-tail:]
	}
	return txs
}
