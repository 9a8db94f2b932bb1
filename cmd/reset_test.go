package cmd

import (
	"context"
	"flag"
	"os"
	"testing"

	"github.com/google/subcommands"
	"github.com/smartsip/portfolio"
	"github.com/smartsip/portfolio/date"
)

func seedLedger(t *testing.T) {
	t.Helper()
	l := portfolio.NewLedger(
		portfolio.NewBuy(date.MustParse("2024-01-01"), "AAPL", portfolio.Q(10), portfolio.M(150)),
	)
	if err := saveLedger(l); err != nil {
		t.Fatal(err)
	}
}

func runReset(t *testing.T, c *resetCmd) subcommands.ExitStatus {
	t.Helper()
	return c.Execute(context.Background(), flag.NewFlagSet("reset", flag.ContinueOnError))
}

func TestResetRequiresConfirmation(t *testing.T) {
	useTempLedger(t)
	seedLedger(t)

	if got := runReset(t, &resetCmd{}); got != subcommands.ExitUsageError {
		t.Fatalf("reset without -f returned %v, want usage error", got)
	}
	l, err := loadLedger()
	if err != nil {
		t.Fatal(err)
	}
	if l.Len() != 1 {
		t.Errorf("unconfirmed reset touched the ledger: %d transactions left", l.Len())
	}
}

func TestResetClearsLedgerAndIsUndoable(t *testing.T) {
	useTempLedger(t)
	seedLedger(t)

	if got := runReset(t, &resetCmd{force: true}); got != subcommands.ExitSuccess {
		t.Fatalf("reset returned %v", got)
	}
	l, err := loadLedger()
	if err != nil {
		t.Fatal(err)
	}
	if l.Len() != 0 {
		t.Fatalf("got %d transactions after reset, want 0", l.Len())
	}

	if restored, err := popBackup(); err != nil || !restored {
		t.Fatalf("reset must be undoable: restored=%v err=%v", restored, err)
	}
	if l, err = loadLedger(); err != nil || l.Len() != 1 {
		t.Errorf("undo after reset left %d transactions, want 1 (err=%v)", l.Len(), err)
	}
}

func TestResetSample(t *testing.T) {
	useTempLedger(t)

	if got := runReset(t, &resetCmd{force: true, sample: true}); got != subcommands.ExitSuccess {
		t.Fatalf("reset returned %v", got)
	}
	l, err := loadLedger()
	if err != nil {
		t.Fatal(err)
	}
	if l.Len() != 3 {
		t.Errorf("got %d transactions in the demo portfolio, want 3", l.Len())
	}
}

func TestResetDropsUndoHistory(t *testing.T) {
	useTempLedger(t)
	seedLedger(t)
	seedLedger(t) // two saves, so there is real undo history to drop

	if got := runReset(t, &resetCmd{force: true, undo: true}); got != subcommands.ExitSuccess {
		t.Fatalf("reset returned %v", got)
	}
	backups, err := listBackups()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 0 {
		t.Errorf("got %d backups after reset -undo, want 0", len(backups))
	}
	if restored, _ := popBackup(); restored {
		t.Error("reset -undo must leave nothing to undo")
	}
}

func TestResetDiscardsPrices(t *testing.T) {
	useTempLedger(t)
	cache := &portfolio.PriceCache{Date: portfolio.Today(), Prices: portfolio.PriceMap{"AAPL": portfolio.M(175.50)}}
	if err := portfolio.SavePriceCache(*priceCacheFile, cache); err != nil {
		t.Fatal(err)
	}

	if got := runReset(t, &resetCmd{force: true, prices: true}); got != subcommands.ExitSuccess {
		t.Fatalf("reset returned %v", got)
	}
	if _, err := os.Stat(*priceCacheFile); !os.IsNotExist(err) {
		t.Errorf("price cache still exists after reset -prices (stat err: %v)", err)
	}
	// Missing cache reads back as empty, not as an error.
	if prices := loadPrices(); len(prices) != 0 {
		t.Errorf("got %d cached prices after reset -prices, want 0", len(prices))
	}
}
