// Package cmd implements the CLI application to manage the portfolio.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/smartsip/portfolio"
)

// Register the subcommands.
// A main package calls Register() to declare subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&buyCmd{}, "transactions")
	c.Register(&sellCmd{}, "transactions")
	c.Register(&deleteCmd{}, "transactions")
	c.Register(&undoCmd{}, "transactions")
	c.Register(&resetCmd{}, "transactions")
	c.Register(&txCmd{}, "transactions")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&holdingsCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")
	c.Register(&analyzeCmd{}, "reports")

	c.Register(&updateCmd{}, "prices")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "transactions.jsonl", "Path to the ledger file containing transactions (JSONL format)")
var priceCacheFile = flag.String("price-cache", "prices.json", "Path to the cached prices file")

// loadLedger reads the app ledger file; a missing file is an empty ledger.
func loadLedger() (*portfolio.Ledger, error) {
	return portfolio.LoadLedger(*ledgerFile)
}

// saveLedger backs up the current ledger file and writes the new state.
// The backup makes the mutation undoable with the undo command.
func saveLedger(l *portfolio.Ledger) error {
	if err := pushBackup(); err != nil {
		return fmt.Errorf("could not back up the ledger: %w", err)
	}
	return portfolio.SaveLedger(*ledgerFile, l)
}

// loadPrices reads the cached prices, warning when they are stale.
func loadPrices() portfolio.PriceMap {
	cache, err := portfolio.LoadPriceCache(*priceCacheFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return portfolio.PriceMap{}
	}
	if len(cache.Prices) > 0 && cache.Stale(portfolio.Today()) {
		fmt.Fprintf(os.Stderr, "Warning: prices were last fetched on %s, run 'sip update' to refresh them\n", cache.Date)
	}
	return cache.Prices
}

// backupLimit bounds how many prior ledger files the undo command can restore.
const backupLimit = 20

func backupDir() string { return *ledgerFile + ".undo" }

// pushBackup copies the current ledger file into the backup directory,
// evicting the oldest backup beyond backupLimit. A missing ledger file
// is backed up as an empty one, so undoing the first mutation works too.
func pushBackup() error {
	content, err := os.ReadFile(*ledgerFile)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	if err := os.MkdirAll(backupDir(), 0700); err != nil {
		return err
	}
	backups, err := listBackups()
	if err != nil {
		return err
	}
	seq := 0
	if len(backups) > 0 {
		fmt.Sscanf(filepath.Base(backups[len(backups)-1]), "%d", &seq)
	}
	name := filepath.Join(backupDir(), fmt.Sprintf("%06d.jsonl", seq+1))
	if err := os.WriteFile(name, content, 0600); err != nil {
		return err
	}
	for len(backups) >= backupLimit {
		if err := os.Remove(backups[0]); err != nil {
			return err
		}
		backups = backups[1:]
	}
	return nil
}

// popBackup restores the most recent ledger backup and removes it. It
// reports whether a backup was available.
func popBackup() (bool, error) {
	backups, err := listBackups()
	if err != nil || len(backups) == 0 {
		return false, err
	}
	last := backups[len(backups)-1]
	content, err := os.ReadFile(last)
	if err != nil {
		return false, err
	}
	if err := os.WriteFile(*ledgerFile, content, 0600); err != nil {
		return false, err
	}
	return true, os.Remove(last)
}

func listBackups() ([]string, error) {
	backups, err := filepath.Glob(filepath.Join(backupDir(), "*.jsonl"))
	if err != nil {
		return nil, err
	}
	sort.Strings(backups)
	return backups, nil
}

// printMarkdown renders a markdown document for the terminal. When the
// renderer cannot be set up (no TTY, unknown terminal), the raw
// markdown is printed instead.
func printMarkdown(doc string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Println(doc)
		return
	}
	out, err := r.Render(doc)
	if err != nil {
		fmt.Println(doc)
		return
	}
	fmt.Print(out)
}
