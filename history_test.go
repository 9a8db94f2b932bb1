package portfolio

import (
	"testing"
)

// fixedSource quotes the same price for a symbol on every day.
type fixedSource map[string]Money

func (s fixedSource) PriceOn(symbol string, day Date) (Money, bool) {
	m, ok := s[symbol]
	return m, ok
}

func TestReconstructHistory_oneDayPerPoint(t *testing.T) {
	txs := []Transaction{buy("2024-01-01", "AAPL", 10, 100)}
	today := day("2024-01-10")

	points := ReconstructHistory(txs, PriceMap{"AAPL": M(100)}, fixedSource{"AAPL": M(100)}, today)

	if len(points) != 10 {
		t.Fatalf("got %d points, want 10", len(points))
	}
	for i, p := range points {
		if want := day("2024-01-01").Add(i); p.Date != want {
			t.Errorf("points[%d].Date = %s, want %s", i, p.Date, want)
		}
	}
	if last := points[len(points)-1]; last.Date != today {
		t.Errorf("last point is %s, want today %s", last.Date, today)
	}
}

func TestReconstructHistory_startsWhenCapitalEnters(t *testing.T) {
	// The opening sell creates cash but no invested capital; the curve
	// must stay empty until the buy two days later.
	txs := []Transaction{
		sell("2024-01-01", "AAPL", 10, 100),
		buy("2024-01-03", "MSFT", 20, 100),
	}
	today := day("2024-01-05")

	points := ReconstructHistory(txs, PriceMap{}, fixedSource{"MSFT": M(100)}, today)

	if len(points) != 3 {
		t.Fatalf("got %d points, want 3", len(points))
	}
	if points[0].Date != day("2024-01-03") {
		t.Errorf("first point is %s, want 2024-01-03", points[0].Date)
	}
	// 2000 purchase minus 1000 recycled proceeds.
	checkMoney(t, "Invested", points[0].Invested, M(1000))
}

func TestReconstructHistory_finalPointMatchesSnapshot(t *testing.T) {
	txs := []Transaction{
		buy("2024-01-01", "AAPL", 10, 150),
		sell("2024-01-05", "AAPL", 4, 160),
		buy("2024-01-08", "MSFT", 2, 250),
	}
	prices := PriceMap{"AAPL": M(170), "MSFT": M(260)}
	today := day("2024-01-15")

	// With a source pinned at the current prices, the end of the curve
	// must agree with the snapshot valuation.
	points := ReconstructHistory(txs, prices, fixedSource(prices), today)
	s := NewSnapshot(txs, prices)

	if len(points) == 0 {
		t.Fatal("no history points")
	}
	last := points[len(points)-1]
	checkMoney(t, "Value", last.Value, s.Summary.CurrentValue)
	checkMoney(t, "Invested", last.Invested, s.Summary.TotalInvested)
	if !last.ReturnRate.Equal(s.Summary.ReturnRate) {
		t.Errorf("ReturnRate = %s, want %s", last.ReturnRate, s.Summary.ReturnRate)
	}
}

func TestReconstructHistory_priceFallbacks(t *testing.T) {
	txs := []Transaction{buy("2024-01-01", "AAPL", 1, 50)}
	today := day("2024-01-01")

	// Source is silent, current price known: the current price wins.
	points := ReconstructHistory(txs, PriceMap{"AAPL": M(70)}, fixedSource{}, today)
	checkMoney(t, "Value with current price", points[0].Value, M(70))

	// Source silent and no current price either: flat default of 100.
	points = ReconstructHistory(txs, PriceMap{}, fixedSource{}, today)
	checkMoney(t, "Value with flat default", points[0].Value, M(100))
}

func TestReconstructHistory_empty(t *testing.T) {
	if points := ReconstructHistory(nil, PriceMap{}, fixedSource{}, Today()); len(points) != 0 {
		t.Errorf("got %d points for an empty log, want 0", len(points))
	}
}

func TestRandomWalk(t *testing.T) {
	today := day("2024-06-01")
	w := NewRandomWalk([]string{"AAPL", "ZZZZ"}, PriceMap{"AAPL": M(175.50)}, today)

	// The series is anchored at the known current price today.
	got, ok := w.PriceOn("AAPL", today)
	if !ok {
		t.Fatal("no price for AAPL today")
	}
	checkMoney(t, "price today", got, M(175.50))

	// A symbol with no known price anchors at the flat default.
	got, ok = w.PriceOn("ZZZZ", today)
	if !ok {
		t.Fatal("no price for ZZZZ today")
	}
	checkMoney(t, "unknown symbol price today", got, fallbackPrice)

	// The walk covers the full window and every price stays positive.
	for i := 0; i < walkDays; i++ {
		p, ok := w.PriceOn("AAPL", today.Add(-i))
		if !ok {
			t.Fatalf("no price %d days back", i)
		}
		if !p.IsPositive() {
			t.Fatalf("price %d days back is %s, want positive", i, p)
		}
	}
	if _, ok := w.PriceOn("AAPL", today.Add(-walkDays)); ok {
		t.Error("got a price beyond the generated window")
	}
	if _, ok := w.PriceOn("MSFT", today); ok {
		t.Error("got a price for a symbol that was never generated")
	}
}
