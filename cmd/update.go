package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/smartsip/portfolio"
	"github.com/smartsip/portfolio/agent"
)

type updateCmd struct {
	offline bool
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "fetch current prices for the held securities" }
func (*updateCmd) Usage() string {
	return `sip update [-offline]

  Fetches the current market price of every symbol in the ledger and
  stores them in the price cache. With a Gemini API key configured the
  lookup is answered by a model grounded in web search; otherwise, or
  with -offline, prices come from the public quote endpoint.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.offline, "offline", false, "Skip the model and use the public quote endpoint directly.")
}

func (c *updateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	symbols := ledger.Symbols()
	if len(symbols) == 0 {
		fmt.Println("No symbols in the ledger, nothing to update")
		return subcommands.ExitSuccess
	}

	fetched, err := c.fetch(ctx, symbols)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	if len(fetched) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no prices could be fetched")
		return subcommands.ExitFailure
	}

	cache, err := portfolio.LoadPriceCache(*priceCacheFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading price cache: %v\n", err)
		return subcommands.ExitFailure
	}
	cache.Prices.Merge(fetched)
	cache.Date = portfolio.Today()
	if err := portfolio.SavePriceCache(*priceCacheFile, cache); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving price cache: %v\n", err)
		return subcommands.ExitFailure
	}

	for _, symbol := range symbols {
		if price, ok := fetched.Get(symbol); ok {
			fmt.Printf("%-8s %s\n", symbol, price)
		} else {
			fmt.Printf("%-8s (no price)\n", symbol)
		}
	}
	return subcommands.ExitSuccess
}

// fetch gets prices from the model when an API key is configured, and
// falls back to the public quote endpoint.
func (c *updateCmd) fetch(ctx context.Context, symbols []string) (portfolio.PriceMap, error) {
	if !c.offline && hasModelKey() {
		client, err := agent.NewClient(ctx)
		if err == nil {
			prices, err := agent.FetchLivePrices(ctx, client, symbols)
			if err == nil {
				return prices, nil
			}
			fmt.Fprintf(os.Stderr, "Warning: model price lookup failed (%v), falling back to quotes\n", err)
		}
	}
	return portfolio.NewQuoteService().Quotes(symbols)
}

func hasModelKey() bool {
	return os.Getenv("GEMINI_API_KEY") != "" || os.Getenv("GOOGLE_API_KEY") != ""
}
