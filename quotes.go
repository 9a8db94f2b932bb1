package portfolio

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
)

// yahooChartURL is the public chart endpoint; it returns the latest
// market price in the chart metadata without needing an API key.
const yahooChartURL = "https://query1.finance.yahoo.com/v8/finance/chart/"

// QuoteService fetches current market prices from the Yahoo chart API.
// It is the offline fallback of the price updater, used when no language
// model is configured.
type QuoteService struct {
	client  *http.Client
	baseURL string
}

// NewQuoteService returns a quote service backed by the daily-expiring
// HTTP cache.
func NewQuoteService() *QuoteService {
	return &QuoteService{client: daily(), baseURL: yahooChartURL}
}

// Quote fetches the latest market price for one symbol.
func (s *QuoteService) Quote(symbol string) (Money, error) {
	symbol = NormalizeSymbol(symbol)
	addr := s.baseURL + url.PathEscape(symbol)

	var jobj any
	if err := jwget(s.client, addr, &jobj); err != nil {
		return Money{}, fmt.Errorf("error retrieving quote for %q: %w", symbol, err)
	}

	path := "$.chart.result[0].meta.regularMarketPrice"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return Money{}, fmt.Errorf("error parsing quote for %q: %q %w", symbol, path, err)
	}
	// jsonpath sometimes wraps a single answer in a list; unwrap it.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return Money{}, fmt.Errorf("error parsing quote for %q: %q not a float: %v", symbol, path, jval)
	}
	if val <= 0 {
		return Money{}, fmt.Errorf("empty quote for %q", symbol)
	}
	return M(val), nil
}

// Quotes fetches prices for all symbols. Symbols that fail are skipped;
// their errors are joined and returned alongside whatever was fetched.
func (s *QuoteService) Quotes(symbols []string) (PriceMap, error) {
	prices := PriceMap{}
	var errs []error
	for _, symbol := range symbols {
		price, err := s.Quote(symbol)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		prices.Set(symbol, price)
	}
	return prices, errors.Join(errs...)
}
