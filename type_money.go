package portfolio

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the reporting currency of the portfolio. The ledger is
// single-currency: every price, fee and cash amount is expressed in it.
const Currency = "USD"

// Money represents a monetary amount in the reporting currency.
type Money struct {
	value decimal.Decimal
}

// M is a convenient factory for Money.
func M[T float64 | int | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value)} }

// Mul returns the amount scaled by a quantity (e.g. price times units).
func (m Money) Mul(q Quantity) Money { return Money{value: m.value.Mul(q.value)} }

// Div returns the amount divided by a quantity (e.g. cost per unit).
// The quantity must be non-zero.
func (m Money) Div(q Quantity) Money { return Money{value: m.value.Div(q.value)} }

// Ratio returns m/n as a plain float, for percentage computations.
// The divisor must be non-zero.
func (m Money) Ratio(n Money) float64 { return m.value.Div(n.value).InexactFloat64() }

func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }

// AsFloat returns the closest float64 representation, for display only.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// String formats the amount with the reporting currency's symbol and
// fraction digits, e.g. "$1,234.50".
func (m Money) String() string {
	cur := money.GetCurrency(Currency)
	minor := m.value.Shift(int32(cur.Fraction)).Round(0)
	return money.New(minor.IntPart(), Currency).Display()
}

// SignedString is like String but with an explicit sign, and "-" for zero.
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// Money is persisted as a bare decimal number; the currency is implied.
func (m Money) MarshalJSON() ([]byte, error) { return m.value.MarshalJSON() }
func (m *Money) UnmarshalJSON(data []byte) error {
	return m.value.UnmarshalJSON(data)
}
