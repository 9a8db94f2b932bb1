package renderer

import (
	"github.com/smartsip/portfolio"
)

type transactionRow struct {
	ID       string
	Date     string
	Side     string
	Symbol   string
	Quantity string
	Price    string
	Amount   string
}

type transactionsView struct {
	Rows []transactionRow
}

// TransactionsMarkdown renders the transaction log in chronological order.
func TransactionsMarkdown(l *portfolio.Ledger) string {
	var v transactionsView
	for _, t := range l.Transactions() {
		v.Rows = append(v.Rows, transactionRow{
			ID:       t.ID,
			Date:     t.Date.String(),
			Side:     string(t.Side),
			Symbol:   t.Symbol,
			Quantity: t.Quantity.String(),
			Price:    t.Price.String(),
			Amount:   t.Cost().String(),
		})
	}
	return renderTemplate("transactions", "transactions.md", nil, v)
}
