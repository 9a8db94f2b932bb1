// Package agent asks a language model about the portfolio: live price
// lookups grounded in web search, and a structured risk analysis of the
// current holdings.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/smartsip/portfolio"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Analysis is the model's structured assessment of the portfolio.
type Analysis struct {
	Summary     string   `json:"summary"`
	RiskLevel   string   `json:"riskLevel"` // Low, Medium or High
	Suggestions []string `json:"suggestions"`
}

// NewClient creates a genai client from the ambient configuration
// (GEMINI_API_KEY or GOOGLE_API_KEY in the environment).
func NewClient(ctx context.Context) (*genai.Client, error) {
	return genai.NewClient(ctx, nil)
}

// AnalyzePortfolio asks the model for a diversification summary, a risk
// level and three rebalancing suggestions. The response is constrained
// by a JSON schema so it always decodes into an Analysis.
func AnalyzePortfolio(ctx context.Context, client *genai.Client, holdings []portfolio.Holding) (*Analysis, error) {
	if len(holdings) == 0 {
		return nil, fmt.Errorf("nothing to analyze: the portfolio has no holdings")
	}

	prompt := `Analyze this stock portfolio.
1. Provide a brief summary of the diversification.
2. Assess the risk level (Low, Medium, High).
3. Give 3 actionable suggestions for optimization or rebalancing.

Portfolio:
` + portfolioContext(holdings)

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"summary":   {Type: genai.TypeString},
				"riskLevel": {Type: genai.TypeString, Enum: []string{"Low", "Medium", "High"}},
				"suggestions": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
			},
			Required: []string{"summary", "riskLevel", "suggestions"},
		},
	}

	resp, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), config)
	if err != nil {
		return nil, fmt.Errorf("analysis request failed: %w", err)
	}
	var a Analysis
	if err := json.Unmarshal([]byte(resp.Text()), &a); err != nil {
		return nil, fmt.Errorf("could not decode analysis response: %w", err)
	}
	return &a, nil
}

// FetchLivePrices asks the model for the latest market price of each
// symbol, grounding the answer in web search. Structured output cannot
// be combined with the search tool, so the JSON object is extracted from
// the free-form answer.
func FetchLivePrices(ctx context.Context, client *genai.Client, symbols []string) (portfolio.PriceMap, error) {
	if len(symbols) == 0 {
		return portfolio.PriceMap{}, nil
	}

	prompt := fmt.Sprintf(`Find the latest market price (in USD) for these stock symbols: %s.
Return a strict JSON object where keys are symbols and values are the numeric prices.
Example format: {"AAPL": 150.25, "MSFT": 310.50}
Do not include any markdown formatting or explanation. Just the JSON.`,
		strings.Join(symbols, ", "))

	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
	}

	resp, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), config)
	if err != nil {
		return nil, fmt.Errorf("price request failed: %w", err)
	}
	prices, err := extractPrices(resp.Text())
	if err != nil {
		return nil, fmt.Errorf("could not read prices from the model's answer: %w", err)
	}
	return prices, nil
}

var jsonObject = regexp.MustCompile(`\{[\s\S]*\}`)

// extractPrices pulls the first JSON object out of a free-form answer
// and decodes it as a symbol-to-price table.
func extractPrices(text string) (portfolio.PriceMap, error) {
	match := jsonObject.FindString(text)
	if match == "" {
		return nil, fmt.Errorf("no JSON object in %q", text)
	}
	var raw map[string]float64
	if err := json.Unmarshal([]byte(match), &raw); err != nil {
		return nil, err
	}
	prices := portfolio.PriceMap{}
	for symbol, price := range raw {
		if price > 0 {
			prices.Set(symbol, portfolio.M(price))
		}
	}
	return prices, nil
}

// portfolioContext renders the holdings as the plain-text inventory the
// prompts embed.
func portfolioContext(holdings []portfolio.Holding) string {
	var b strings.Builder
	for _, h := range holdings {
		fmt.Fprintf(&b, "%s: %s shares @ avg cost $%.2f (Current: $%.2f)\n",
			h.Symbol, h.Quantity, h.AverageCost.AsFloat(), h.CurrentPrice.AsFloat())
	}
	return b.String()
}
