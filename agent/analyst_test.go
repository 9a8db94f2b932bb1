package agent

import (
	"strings"
	"testing"

	"github.com/smartsip/portfolio"
)

func TestExtractPrices(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    map[string]float64
		wantErr bool
	}{
		{
			name: "bare object",
			in:   `{"AAPL": 150.25, "MSFT": 310.50}`,
			want: map[string]float64{"AAPL": 150.25, "MSFT": 310.50},
		},
		{
			name: "object wrapped in prose",
			in:   "Here are the prices:\n```json\n{\"AAPL\": 150.25}\n``` hope this helps",
			want: map[string]float64{"AAPL": 150.25},
		},
		{
			name: "non-positive prices dropped",
			in:   `{"AAPL": 150.25, "ZZZZ": 0}`,
			want: map[string]float64{"AAPL": 150.25},
		},
		{
			name:    "no object at all",
			in:      "I could not find any prices.",
			wantErr: true,
		},
		{
			name:    "malformed object",
			in:      `{"AAPL": }`,
			wantErr: true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := extractPrices(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tc.wantErr)
			}
			if tc.wantErr {
				return
			}
			if len(got) != len(tc.want) {
				t.Fatalf("got %d prices, want %d", len(got), len(tc.want))
			}
			for symbol, price := range tc.want {
				m, ok := got.Get(symbol)
				if !ok {
					t.Errorf("missing price for %s", symbol)
					continue
				}
				if !m.Equal(portfolio.M(price)) {
					t.Errorf("%s = %s, want %v", symbol, m, price)
				}
			}
		})
	}
}

func TestPortfolioContext(t *testing.T) {
	holdings := []portfolio.Holding{
		{Symbol: "AAPL", Quantity: portfolio.Q(20), AverageCost: portfolio.M(152.50), CurrentPrice: portfolio.M(175.50)},
		{Symbol: "MSFT", Quantity: portfolio.Q(5), AverageCost: portfolio.M(250), CurrentPrice: portfolio.M(310.20)},
	}
	got := portfolioContext(holdings)

	for _, want := range []string{
		"AAPL: 20 shares @ avg cost $152.50 (Current: $175.50)",
		"MSFT: 5 shares @ avg cost $250.00 (Current: $310.20)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("context is missing %q:\n%s", want, got)
		}
	}
}
