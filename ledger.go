package portfolio

import (
	"slices"
	"sort"
)

// undoDepth bounds the number of prior ledger states kept for Undo.
const undoDepth = 20

// Ledger owns the transaction log.
//
// Transactions are always kept in chronological order; same-day
// transactions keep the relative order in which they were added (the sort
// is stable and uses no secondary key). Every mutation first pushes a
// snapshot of the current log onto a bounded undo stack.
type Ledger struct {
	transactions []Transaction
	undo         [][]Transaction
}

// NewLedger creates an empty ledger.
func NewLedger(txs ...Transaction) *Ledger {
	l := &Ledger{}
	l.transactions = append(l.transactions, txs...)
	l.stableSort()
	return l
}

// Transactions returns the chronologically sorted log. The returned slice
// is shared; callers must not mutate it.
func (l *Ledger) Transactions() []Transaction { return l.transactions }

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Symbols returns the sorted set of distinct symbols appearing in the log.
func (l *Ledger) Symbols() []string {
	seen := make(map[string]bool)
	var symbols []string
	for _, t := range l.transactions {
		if !seen[t.Symbol] {
			seen[t.Symbol] = true
			symbols = append(symbols, t.Symbol)
		}
	}
	sort.Strings(symbols)
	return symbols
}

// BySymbol returns the transactions referencing one symbol, in
// chronological order.
func (l *Ledger) BySymbol(symbol string) []Transaction {
	symbol = NormalizeSymbol(symbol)
	var txs []Transaction
	for _, t := range l.transactions {
		if t.Symbol == symbol {
			txs = append(txs, t)
		}
	}
	return txs
}

// Add appends transactions to the ledger, keeping chronological order.
func (l *Ledger) Add(txs ...Transaction) {
	if len(txs) == 0 {
		return
	}
	l.checkpoint()
	l.transactions = append(l.transactions, txs...)
	l.stableSort()
}

// Remove deletes the transaction with the given id. It reports whether a
// transaction was removed.
func (l *Ledger) Remove(id string) bool {
	i := slices.IndexFunc(l.transactions, func(t Transaction) bool { return t.ID == id })
	if i < 0 {
		return false
	}
	l.checkpoint()
	l.transactions = slices.Delete(l.transactions, i, i+1)
	return true
}

// Clear removes every transaction from the ledger. The cleared state is
// itself undoable unless the undo history is dropped too.
func (l *Ledger) Clear(dropUndo bool) {
	if dropUndo {
		l.undo = nil
		l.transactions = nil
		return
	}
	l.checkpoint()
	l.transactions = nil
}

// CanUndo reports whether a prior ledger state is available.
func (l *Ledger) CanUndo() bool { return len(l.undo) > 0 }

// Undo restores the most recent prior state of the transaction log. It
// reports whether anything was undone.
func (l *Ledger) Undo() bool {
	if len(l.undo) == 0 {
		return false
	}
	last := len(l.undo) - 1
	l.transactions = l.undo[last]
	l.undo = l.undo[:last]
	return true
}

// checkpoint pushes an immutable snapshot of the current log onto the
// undo stack, evicting the oldest entry beyond undoDepth.
func (l *Ledger) checkpoint() {
	l.undo = append(l.undo, slices.Clone(l.transactions))
	if len(l.undo) > undoDepth {
		l.undo = l.undo[len(l.undo)-undoDepth:]
	}
}

// stableSort orders transactions by date, preserving the relative order
// of same-day entries.
func (l *Ledger) stableSort() {
	slices.SortStableFunc(l.transactions, func(a, b Transaction) int {
		return a.Date.Compare(b.Date)
	})
}
