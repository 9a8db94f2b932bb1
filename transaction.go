package portfolio

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

// Side is a typed string identifying the direction of a transaction.
type Side string

const (
	Buy  Side = "BUY"
	Sell Side = "SELL"
)

// ParseSide parses a transaction side, case-insensitively.
func ParseSide(s string) (Side, error) {
	switch strings.ToUpper(s) {
	case string(Buy):
		return Buy, nil
	case string(Sell):
		return Sell, nil
	default:
		return "", fmt.Errorf("unknown transaction side: %q", s)
	}
}

// Transaction is one immutable buy or sell record in the ledger.
//
// Symbols are normalized to upper case on construction so the valuation
// engine never has to care about case. Fees are carried for future use
// but do not participate in the valuation math.
type Transaction struct {
	ID       string   `json:"id"`
	Symbol   string   `json:"symbol"`
	Side     Side     `json:"type"`
	Date     Date     `json:"date"`
	Price    Money    `json:"price"`    // price per unit at execution
	Quantity Quantity `json:"quantity"` // units transacted
	Fees     Money    `json:"fees"`
}

// NewBuy creates a buy transaction with a fresh ID.
func NewBuy(day Date, symbol string, quantity Quantity, price Money) Transaction {
	return newTransaction(day, symbol, Buy, quantity, price)
}

// NewSell creates a sell transaction with a fresh ID.
func NewSell(day Date, symbol string, quantity Quantity, price Money) Transaction {
	return newTransaction(day, symbol, Sell, quantity, price)
}

func newTransaction(day Date, symbol string, side Side, quantity Quantity, price Money) Transaction {
	return Transaction{
		ID:       newID(),
		Symbol:   NormalizeSymbol(symbol),
		Side:     side,
		Date:     day,
		Price:    price,
		Quantity: quantity,
	}
}

// NormalizeSymbol returns the canonical form of an instrument symbol.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// Cost returns quantity times price: the cash cost of a buy, or the cash
// proceeds of a sell.
func (t Transaction) Cost() Money { return t.Price.Mul(t.Quantity) }

// Validate checks the transaction at the input boundary. The valuation
// engine itself is permissive and never calls this; it is for the layer
// collecting user input, which must reject bad records before they reach
// the ledger.
func (t Transaction) Validate() error {
	if t.Symbol == "" {
		return errors.New("transaction symbol is missing")
	}
	if t.Side != Buy && t.Side != Sell {
		return fmt.Errorf("unknown transaction side: %q", t.Side)
	}
	if t.Date.IsZero() {
		return errors.New("transaction date is missing")
	}
	if !t.Quantity.IsPositive() {
		return fmt.Errorf("transaction quantity must be positive, got %s", t.Quantity)
	}
	if !t.Price.IsPositive() {
		return fmt.Errorf("transaction price must be positive, got %s", t.Price)
	}
	return nil
}

// newID returns an opaque identifier for a transaction: nanoseconds
// since epoch in base 36, with a random suffix so that records created
// within one clock tick still get distinct ids.
func newID() string {
	now := strconv.FormatInt(time.Now().UnixNano(), 36)
	salt := strconv.FormatUint(uint64(rand.Uint32()), 36)
	return now + "-" + salt
}
