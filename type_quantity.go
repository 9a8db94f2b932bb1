package portfolio

import "github.com/shopspring/decimal"

// newDecimal converts common numeric types to a decimal.Decimal.
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Quantity represents a number of units of an instrument. Fractional
// quantities are supported.
type Quantity struct {
	value decimal.Decimal
}

// Q is a convenient factory for Quantity.
func Q[T float64 | int | int64 | decimal.Decimal](value T) Quantity {
	return Quantity{value: newDecimal(value)}
}

func (q Quantity) Add(p Quantity) Quantity     { return Quantity{value: q.value.Add(p.value)} }
func (q Quantity) Sub(p Quantity) Quantity     { return Quantity{value: q.value.Sub(p.value)} }
func (q Quantity) Equal(p Quantity) bool       { return q.value.Equal(p.value) }
func (q Quantity) LessThan(p Quantity) bool    { return q.value.LessThan(p.value) }
func (q Quantity) GreaterThan(p Quantity) bool { return q.value.GreaterThan(p.value) }
func (q Quantity) IsZero() bool                { return q.value.IsZero() }
func (q Quantity) IsPositive() bool            { return q.value.IsPositive() }
func (q Quantity) IsNegative() bool            { return q.value.IsNegative() }
func (q Quantity) String() string              { return q.value.String() }

// AsFloat returns the closest float64 representation, for display only.
func (q Quantity) AsFloat() float64 { return q.value.InexactFloat64() }

func (q Quantity) MarshalJSON() ([]byte, error) { return q.value.MarshalJSON() }
func (q *Quantity) UnmarshalJSON(data []byte) error {
	return q.value.UnmarshalJSON(data)
}
