package portfolio

import (
	"math/rand/v2"
	"slices"

	"github.com/smartsip/portfolio/date"
)

// HistoryPoint is the reconstructed valuation of the portfolio at the end
// of one day.
type HistoryPoint struct {
	Date       Date    `json:"date"`
	Value      Money   `json:"value"`
	Invested   Money   `json:"invested"`
	ReturnRate Percent `json:"returnRate"`
}

// PriceSource answers what an instrument was worth on a given day. A
// source is free to not know: the reconstruction falls back to the
// current price, then to a flat default.
type PriceSource interface {
	PriceOn(symbol string, day Date) (Money, bool)
}

// fallbackPrice values a symbol with no known price at all.
var fallbackPrice = M(100)

// walkDays is how far back the random walk generates prices.
const walkDays = 3000

// RandomWalk is a synthetic PriceSource. For each symbol it anchors the
// series at the current price today and walks backwards one day at a
// time, dividing by a random daily change of up to about two percent.
// The series is plausible, not real; it exists so the history chart has
// a continuous price line to draw.
type RandomWalk struct {
	series map[string]*date.History[Money]
}

// NewRandomWalk generates synthetic price series for the given symbols,
// covering the walkDays days up to and including today. A symbol missing
// from prices is anchored at the flat default.
func NewRandomWalk(symbols []string, prices PriceMap, today Date) *RandomWalk {
	w := &RandomWalk{series: make(map[string]*date.History[Money])}
	for _, symbol := range symbols {
		symbol = NormalizeSymbol(symbol)
		price, ok := prices.Get(symbol)
		if !ok {
			price = fallbackPrice
		}
		h := &date.History[Money]{}
		for i := 0; i < walkDays; i++ {
			h.Append(today.Add(-i), price)
			change := rand.Float64()*0.041 - 0.02
			price = M(price.AsFloat() / (1 + change))
		}
		w.series[symbol] = h
	}
	return w
}

// PriceOn returns the synthetic price for the day, if the day falls
// inside the generated window.
func (w *RandomWalk) PriceOn(symbol string, day Date) (Money, bool) {
	h, ok := w.series[NormalizeSymbol(symbol)]
	if !ok {
		return Money{}, false
	}
	return h.Get(day)
}

// ReconstructHistory replays the transaction log day by day from the
// first transaction through today inclusive, and returns the valuation
// curve of the portfolio.
//
// Each day folds that day's transactions with the same cash rules as
// NewSnapshot, then values the open positions with src. Days before any
// capital has entered the portfolio are omitted. An empty log yields an
// empty history.
func ReconstructHistory(txs []Transaction, prices PriceMap, src PriceSource, today Date) []HistoryPoint {
	if len(txs) == 0 {
		return nil
	}
	sorted := slices.Clone(txs)
	slices.SortStableFunc(sorted, func(a, b Transaction) int {
		return a.Date.Compare(b.Date)
	})

	var account cashAccount
	quantities := make(map[string]Quantity)
	var order []string

	var history []HistoryPoint
	cursor := 0
	for day := range sorted[0].Date.DaysUntil(today) {
		for cursor < len(sorted) && sorted[cursor].Date.Compare(day) <= 0 {
			t := sorted[cursor]
			if _, ok := quantities[t.Symbol]; !ok {
				order = append(order, t.Symbol)
			}
			switch t.Side {
			case Buy:
				account.fund(t.Cost())
				quantities[t.Symbol] = quantities[t.Symbol].Add(t.Quantity)
			case Sell:
				account.credit(t.Cost())
				q := quantities[t.Symbol].Sub(t.Quantity)
				if q.IsNegative() {
					q = Q(0)
				}
				quantities[t.Symbol] = q
			}
			cursor++
		}

		stockValue := M(0)
		for _, symbol := range order {
			q := quantities[symbol]
			if !q.IsPositive() {
				continue
			}
			price, ok := src.PriceOn(symbol, day)
			if !ok {
				price, ok = prices.Get(symbol)
			}
			if !ok {
				price = fallbackPrice
			}
			stockValue = stockValue.Add(price.Mul(q))
		}

		if account.invested.IsPositive() {
			value := stockValue.Add(account.cash)
			history = append(history, HistoryPoint{
				Date:       day,
				Value:      value,
				Invested:   account.invested,
				ReturnRate: Percent(value.Sub(account.invested).Ratio(account.invested) * 100),
			})
		}
	}
	return history
}
