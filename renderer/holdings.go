package renderer

import (
	"github.com/smartsip/portfolio"
)

type holdingRow struct {
	Symbol       string
	Quantity     string
	AverageCost  string
	CurrentPrice string
	MarketValue  string
	Return       string
}

type holdingsView struct {
	Rows []holdingRow
}

// HoldingsMarkdown renders the active positions of a snapshot.
func HoldingsMarkdown(s *portfolio.Snapshot) string {
	var v holdingsView
	for _, h := range s.Holdings {
		v.Rows = append(v.Rows, holdingRow{
			Symbol:       h.Symbol,
			Quantity:     h.Quantity.String(),
			AverageCost:  h.AverageCost.String(),
			CurrentPrice: h.CurrentPrice.String(),
			MarketValue:  h.MarketValue().String(),
			Return:       h.Return().SignedString(),
		})
	}
	return renderTemplate("holdings", "holdings.md", nil, v)
}
