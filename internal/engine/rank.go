package engine

import "sort"

// Rank returns a copy of insights ordered by descending likelihood score,
// ties broken by canonical layer order. Equal keys keep their input order.
func Rank(insights []LayerInsight) []LayerInsight {
	ranked := make([]LayerInsight, len(insights))
	copy(ranked, insights)

	sort.SliceStable(ranked, func(i, j int) bool {
		si, sj := ranked[i].Score(), ranked[j].Score()
		if si != sj {
			return si > sj
		}
		return CanonicalIndex(ranked[i].Name) < CanonicalIndex(ranked[j].Name)
	})
	return ranked
}

// TopSuspects returns the first topN ranked insights. topN is clamped to at least 1.
func TopSuspects(insights []LayerInsight, topN int) []LayerInsight {
	ranked := Rank(insights)
	n := max(1, topN)
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}
