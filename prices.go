package portfolio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// PriceMap holds the latest known price per symbol.
type PriceMap map[string]Money

// Get returns the price for a symbol, if known.
func (p PriceMap) Get(symbol string) (Money, bool) {
	m, ok := p[NormalizeSymbol(symbol)]
	return m, ok
}

// Set records the price for a symbol.
func (p PriceMap) Set(symbol string, price Money) {
	p[NormalizeSymbol(symbol)] = price
}

// Merge overlays the other map onto this one, keeping existing entries
// for symbols the other map does not mention.
func (p PriceMap) Merge(other PriceMap) {
	for symbol, price := range other {
		p[symbol] = price
	}
}

// PriceCache is the on-disk record of the latest fetched prices, stamped
// with the day they were fetched. Prices fetched on a previous day are
// stale and should be refreshed before the next valuation.
type PriceCache struct {
	Date   Date     `json:"date"`
	Prices PriceMap `json:"prices"`
}

// Stale reports whether the cache was not fetched today.
func (c *PriceCache) Stale(today Date) bool {
	return c.Date != today
}

// LoadPriceCache reads the price cache file. A missing file yields an
// empty, stale cache rather than an error.
func LoadPriceCache(path string) (*PriceCache, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &PriceCache{Prices: PriceMap{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read price cache %q: %w", path, err)
	}
	var c PriceCache
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("could not decode price cache %q: %w", path, err)
	}
	if c.Prices == nil {
		c.Prices = PriceMap{}
	}
	return &c, nil
}

// SavePriceCache writes the price cache file.
func SavePriceCache(path string, c *PriceCache) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode price cache: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("could not write price cache %q: %w", path, err)
	}
	return nil
}
