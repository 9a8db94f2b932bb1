package portfolio

import "fmt"

// Percent represents a percentage value, e.g. 17.7 for +17.7%.
type Percent float64

// Equal compares two percentages with a small tolerance.
func (p Percent) Equal(q Percent) bool {
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

// SignedString renders the percentage with an explicit sign, and "-" for zero.
func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}
