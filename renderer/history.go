package renderer

import (
	"github.com/smartsip/portfolio"
)

type historyRow struct {
	Date     string
	Value    string
	Invested string
	Return   string
}

type historyView struct {
	Rows []historyRow
}

// historySampleTarget keeps long valuation curves readable in a terminal.
const historySampleTarget = 30

// HistoryMarkdown renders the valuation curve as a table. Long curves
// are downsampled to roughly one row per sampling step, always keeping
// the first and last day.
func HistoryMarkdown(points []portfolio.HistoryPoint) string {
	var v historyView
	step := len(points) / historySampleTarget
	if step < 1 {
		step = 1
	}
	for i, p := range points {
		if i%step != 0 && i != len(points)-1 {
			continue
		}
		v.Rows = append(v.Rows, historyRow{
			Date:     p.Date.String(),
			Value:    p.Value.String(),
			Invested: p.Invested.String(),
			Return:   p.ReturnRate.SignedString(),
		})
	}
	return renderTemplate("history", "history.md", nil, v)
}
