package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteCmd struct{}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a transaction by id" }
func (*deleteCmd) Usage() string {
	return `sip delete <transaction-id>...

  Deletes transactions from the ledger. Transaction ids are shown by the
  tx command. A deletion can be reverted with undo.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ids := f.Args()
	if len(ids) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no transaction id given")
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	removed := 0
	for _, id := range ids {
		if !ledger.Remove(id) {
			fmt.Fprintf(os.Stderr, "Warning: no transaction with id %q\n", id)
			continue
		}
		removed++
	}
	if removed == 0 {
		return subcommands.ExitFailure
	}
	if err := saveLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted %d transaction(s)\n", removed)
	return subcommands.ExitSuccess
}
