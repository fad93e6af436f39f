package engine

import "slp/internal/scenario"

// LayerInsight is the per-layer bundle of likelihood, signals and checks.
type LayerInsight struct {
	Name       string   `json:"name"`
	Likelihood string   `json:"likelihood"`
	Signals    []string `json:"signals"`
	Checks     []string `json:"checks"`
}

// Score returns the likelihood score of the insight.
func (i LayerInsight) Score() int {
	return ScoreLikelihood(i.Likelihood)
}

// Summary is the result of Summarize: title, description and insights in
// full-layer-view order (canonical layers first, then extras in document order).
type Summary struct {
	Title       string
	Description string
	Insights    []LayerInsight
}

// Summarize builds the insights of a scenario.
func Summarize(s scenario.Scenario) Summary {
	insights := make([]LayerInsight, 0, len(s.Layers))
	for _, name := range canonicalLayers {
		if l, ok := s.Layer(name); ok {
			insights = append(insights, newInsight(l))
		}
	}
	for _, l := range s.Layers {
		if !IsCanonical(l.Name) {
			insights = append(insights, newInsight(l))
		}
	}

	return Summary{
		Title:       s.ResolvedTitle(),
		Description: s.Description,
		Insights:    insights,
	}
}

func newInsight(l scenario.Layer) LayerInsight {
	return LayerInsight{
		Name:       l.Name,
		Likelihood: l.Likelihood,
		Signals:    nonNil(l.Signals),
		Checks:     nonNil(l.Checks),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
