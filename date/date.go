// Package date provides a calendar-day type and a date-indexed series,
// the time model used by the portfolio ledger and valuation engine.
package date

import (
	"encoding/json"
	"fmt"
	"iter"
	"time"
)

// Format is the canonical ISO-8601 representation used when writing dates.
const Format = "2006-01-02"

// readFormat is more permissive and accepts single-digit month and day.
const readFormat = "2006-1-2"

// Date represents a calendar day with no time-of-day component.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns a normalized Date for the given year, month and day.
// Out-of-range values are carried over, like time.Date does.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// time returns the canonical time.Time for the day (midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool { return d == Date{} }

// Before reports whether d is strictly before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether d is strictly after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Compare returns -1, 0 or +1 depending on whether d is before, equal to,
// or after x. It is suitable for slices.SortStableFunc.
func (d Date) Compare(x Date) int { return d.time().Compare(x.time()) }

// Add returns the date i days later (or earlier for negative i).
func (d Date) Add(i int) Date { return New(d.y, d.m, d.d+i) }

// DaysUntil iterates every calendar day from d through end, inclusive.
// It yields nothing when end is before d.
func (d Date) DaysUntil(end Date) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for day := d; !day.After(end); day = day.Add(1) {
			if !yield(day) {
				return
			}
		}
	}
}

// String formats the date in its canonical form.
func (d Date) String() string { return d.time().Format(Format) }

// Parse parses a Date from a string. It is lenient and accepts
// single-digit months and days such as "2025-7-1".
func Parse(s string) (Date, error) {
	t, err := time.Parse(readFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", s, Format, err)
	}
	return New(t.Date()), nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// hard-coded dates.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// MarshalJSON encodes the date as a canonical JSON string.
func (d Date) MarshalJSON() ([]byte, error) { return json.Marshal(d.String()) }

// UnmarshalJSON decodes the date from a JSON string.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
