package renderer

import (
	"github.com/smartsip/portfolio"
)

type labeledValue struct {
	Label string
	Value string
}

type summaryView struct {
	Date string
	Rows []labeledValue
}

// SummaryMarkdown renders the headline figures of a snapshot.
func SummaryMarkdown(day portfolio.Date, s *portfolio.Snapshot) string {
	v := summaryView{
		Date: day.String(),
		Rows: []labeledValue{
			{"Total Invested", s.Summary.TotalInvested.String()},
			{"Cash Balance", s.Summary.CashBalance.String()},
			{"Stock Value", s.Summary.StockValue.String()},
			{"Current Value", s.Summary.CurrentValue.String()},
			{"Total Profit", s.Summary.TotalProfit.SignedString()},
			{"Return", s.Summary.ReturnRate.SignedString()},
		},
	}
	return renderTemplate("summary", "summary.md", nil, v)
}
