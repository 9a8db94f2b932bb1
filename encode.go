package portfolio

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts and quantities are persisted as bare JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeLedger reads transactions from a JSONL stream, one JSON object per
// line, and returns a chronologically sorted Ledger. Empty lines are
// skipped. Decoding starts with no undo history.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	var txs []Transaction
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var tx Transaction
		if err := json.Unmarshal(line, &tx); err != nil {
			return nil, fmt.Errorf("could not decode transaction line %q: %w", line, err)
		}
		tx.Symbol = NormalizeSymbol(tx.Symbol)
		txs = append(txs, tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ledger: %w", err)
	}
	return NewLedger(txs...), nil
}

// EncodeTransaction marshals a single transaction and writes it to w
// followed by a newline, in JSONL format.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	data, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write transaction: %w", err)
	}
	return nil
}

// EncodeLedger writes the ledger to w in canonical JSONL form: one
// transaction per line, in chronological order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	for _, tx := range l.Transactions() {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}

// LoadLedger reads the ledger from a file. A missing file is an empty
// ledger, not an error.
func LoadLedger(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	defer f.Close()

	l, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", path, err)
	}
	return l, nil
}

// SaveLedger writes the ledger to a file, replacing its content.
func SaveLedger(path string, l *Ledger) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create ledger file %q: %w", path, err)
	}
	defer f.Close()
	return EncodeLedger(f, l)
}
