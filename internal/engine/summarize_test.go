package engine

import (
	"testing"

	"github.com/m-mizutani/gt"

	"slp/internal/scenario"
)

func layer(name, likelihood string) scenario.Layer {
	return scenario.Layer{Name: name, Likelihood: likelihood, Signals: []string{}, Checks: []string{}}
}

func names(insights []LayerInsight) []string {
	out := make([]string, len(insights))
	for i, in := range insights {
		out[i] = in.Name
	}
	return out
}

func TestSummarize_CanonicalThenExtras(t *testing.T) {
	s := scenario.Scenario{
		Key:         "mixed",
		Title:       "Mixed",
		TitleSet:    true,
		Description: "extra layers after canonical ones",
		Layers: []scenario.Layer{
			layer("Queue", "High"),
			layer("AI", "Low"),
			layer("CPU", "Medium"),
			layer("Cache", "Low"),
			layer("Network", "High"),
		},
	}

	sum := Summarize(s)
	gt.Value(t, sum.Title).Equal("Mixed")
	gt.Value(t, sum.Description).Equal("extra layers after canonical ones")
	gt.Value(t, names(sum.Insights)).Equal([]string{"CPU", "Network", "AI", "Queue", "Cache"})
}

func TestSummarize_Defaults(t *testing.T) {
	sum := Summarize(scenario.Scenario{Key: "bare"})
	gt.Value(t, sum.Title).Equal("Untitled")
	gt.Value(t, sum.Description).Equal("")
	gt.Array(t, sum.Insights).Length(0)

	sum = Summarize(scenario.Scenario{
		Key:    "nil-lists",
		Layers: []scenario.Layer{{Name: "Disk", Likelihood: "Low"}},
	})
	gt.Array(t, sum.Insights).Length(1)
	gt.Value(t, sum.Insights[0].Signals).Equal([]string{})
	gt.Value(t, sum.Insights[0].Checks).Equal([]string{})
}

func TestSummarize_FromParsedCatalog(t *testing.T) {
	c, err := scenario.ParseCatalog([]byte(`scenarios:
  s:
    layers:
      Memory: {}
      Zeta: {likelihood: High}
      Alpha: {likelihood: High}
      CPU:
        likelihood: High
        signals: [a, b]
`))
	gt.NoError(t, err).Required()

	s, ok := c.Lookup("s")
	gt.Bool(t, ok).True()

	sum := Summarize(s)
	gt.Value(t, sum.Title).Equal("Untitled")
	gt.Value(t, names(sum.Insights)).Equal([]string{"CPU", "Memory", "Zeta", "Alpha"})
	gt.Value(t, sum.Insights[1].Likelihood).Equal("Medium")
	gt.Value(t, sum.Insights[0].Signals).Equal([]string{"a", "b"})
}

func TestSummarize_DoesNotMutateInput(t *testing.T) {
	layers := []scenario.Layer{layer("Queue", "High"), layer("CPU", "Low")}
	s := scenario.Scenario{Key: "k", Layers: layers}

	_ = Summarize(s)
	gt.Value(t, s.Layers[0].Name).Equal("Queue")
	gt.Value(t, s.Layers[1].Name).Equal("CPU")
}
