package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type undoCmd struct{}

func (*undoCmd) Name() string     { return "undo" }
func (*undoCmd) Synopsis() string { return "revert the last change to the ledger" }
func (*undoCmd) Usage() string {
	return `sip undo

  Restores the ledger as it was before the last buy, sell, delete or
  reset. Up to 20 changes can be reverted, most recent first.
`
}

func (c *undoCmd) SetFlags(f *flag.FlagSet) {}

func (c *undoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	restored, err := popBackup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error restoring ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if !restored {
		fmt.Fprintln(os.Stderr, "Nothing to undo")
		return subcommands.ExitFailure
	}
	fmt.Println("Reverted the last change to the ledger")
	return subcommands.ExitSuccess
}
