package cmd

import (
	"testing"

	"github.com/smartsip/portfolio"
	"github.com/smartsip/portfolio/date"
)

func TestLimitTransactions(t *testing.T) {
	var txs []portfolio.Transaction
	for i := 0; i < 5; i++ {
		txs = append(txs, portfolio.NewBuy(date.MustParse("2024-01-01").Add(i), "AAPL", portfolio.Q(1), portfolio.M(100)))
	}

	tests := []struct {
		name       string
		head, tail int
		wantFirst  portfolio.Date
		wantLen    int
	}{
		{name: "no limit", wantFirst: date.MustParse("2024-01-01"), wantLen: 5},
		{name: "head", head: 2, wantFirst: date.MustParse("2024-01-01"), wantLen: 2},
		{name: "tail", tail: 2, wantFirst: date.MustParse("2024-01-04"), wantLen: 2},
		{name: "head larger than log", head: 10, wantFirst: date.MustParse("2024-01-01"), wantLen: 5},
		{name: "tail larger than log", tail: 10, wantFirst: date.MustParse("2024-01-01"), wantLen: 5},
		{name: "negative is no limit", head: -1, wantFirst: date.MustParse("2024-01-01"), wantLen: 5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := limitTransactions(txs, tc.head, tc.tail)
			if len(got) != tc.wantLen {
				t.Fatalf("got %d transactions, want %d", len(got), tc.wantLen)
			}
			if got[0].Date != tc.wantFirst {
				t.Errorf("first transaction on %s, want %s", got[0].Date, tc.wantFirst)
			}
		})
	}

	if got := limitTransactions(nil, 3, 0); len(got) != 0 {
		t.Errorf("limiting an empty log returned %d transactions", len(got))
	}
}
