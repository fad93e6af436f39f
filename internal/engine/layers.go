package engine

import "strings"

// Layer names in canonical order.
const (
	LayerCPU       = "CPU"
	LayerMemory    = "Memory"
	LayerDisk      = "Disk"
	LayerNetwork   = "Network"
	LayerOS        = "OS"
	LayerRuntime   = "Runtime"
	LayerFramework = "Framework"
	LayerCloud     = "Cloud"
	LayerAI        = "AI"
)

// Likelihood labels. Compound labels use an en-dash.
const (
	LikelihoodLow        = "Low"
	LikelihoodLowMedium  = "Low–Medium"
	LikelihoodMedium     = "Medium"
	LikelihoodMediumHigh = "Medium–High"
	LikelihoodHigh       = "High"
)

// NeutralScore is the score of any label missing from the likelihood table.
const NeutralScore = 3

// NonCanonicalIndex sorts layers outside the canonical order after all canonical ones.
const NonCanonicalIndex = 999

var canonicalLayers = [...]string{
	LayerCPU,
	LayerMemory,
	LayerDisk,
	LayerNetwork,
	LayerOS,
	LayerRuntime,
	LayerFramework,
	LayerCloud,
	LayerAI,
}

var likelihoodScores = map[string]int{
	LikelihoodLow:        1,
	LikelihoodLowMedium:  2,
	LikelihoodMedium:     3,
	LikelihoodMediumHigh: 4,
	LikelihoodHigh:       5,
}

// CanonicalLayers returns the canonical layer order.
func CanonicalLayers() []string {
	out := make([]string, len(canonicalLayers))
	copy(out, canonicalLayers[:])
	return out
}

// CanonicalIndex returns the 0-based position of name in the canonical order,
// or NonCanonicalIndex.
func CanonicalIndex(name string) int {
	for i, l := range canonicalLayers {
		if l == name {
			return i
		}
	}
	return NonCanonicalIndex
}

// IsCanonical reports whether name is one of the canonical layers.
func IsCanonical(name string) bool {
	return CanonicalIndex(name) != NonCanonicalIndex
}

// NormalizeLikelihood replaces ASCII hyphens with en-dashes and trims whitespace.
func NormalizeLikelihood(label string) string {
	return strings.TrimSpace(strings.ReplaceAll(label, "-", "–"))
}

// ScoreLikelihood maps a likelihood label to its 1-5 score.
// Unknown labels score NeutralScore.
func ScoreLikelihood(label string) int {
	if score, ok := likelihoodScores[NormalizeLikelihood(label)]; ok {
		return score
	}
	return NeutralScore
}
