package renderer

type analysisView struct {
	Summary     string
	RiskLevel   string
	Suggestions []string
}

// AnalysisMarkdown renders a model-generated portfolio assessment.
func AnalysisMarkdown(summary, riskLevel string, suggestions []string) string {
	v := analysisView{Summary: summary, RiskLevel: riskLevel, Suggestions: suggestions}
	return renderTemplate("analysis", "analysis.md", nil, v)
}
