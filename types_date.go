package portfolio

import "github.com/smartsip/portfolio/date"

// Date is re-exported so that most callers only need this package.
type Date = date.Date

// Today returns the current calendar day.
func Today() Date { return date.Today() }

// ParseDate parses a calendar day from its "YYYY-MM-DD" form.
func ParseDate(s string) (Date, error) { return date.Parse(s) }
