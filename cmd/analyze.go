package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/smartsip/portfolio"
	"github.com/smartsip/portfolio/agent"
	"github.com/smartsip/portfolio/renderer"
)

type analyzeCmd struct{}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "ask the model for a portfolio assessment" }
func (*analyzeCmd) Usage() string {
	return `sip analyze

  Sends the current holdings to the model and displays its assessment:
  a diversification summary, a risk level and rebalancing suggestions.
  Requires GEMINI_API_KEY to be set.
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {}

func (c *analyzeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	s := portfolio.NewSnapshot(ledger.Transactions(), loadPrices())
	if len(s.Holdings) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no holdings to analyze")
		return subcommands.ExitFailure
	}

	client, err := agent.NewClient(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating model client: %v\n", err)
		return subcommands.ExitFailure
	}
	analysis, err := agent.AnalyzePortfolio(ctx, client, s.Holdings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error analyzing portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.AnalysisMarkdown(analysis.Summary, analysis.RiskLevel, analysis.Suggestions))
	return subcommands.ExitSuccess
}
