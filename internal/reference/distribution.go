// Package reference holds the read-only reference data used by scoring: the historical
// score distribution and the ranked institution list.
package reference

import (
	"math"
	"sort"
)

// Distribution is an immutable, sorted set of historical overall scores
type Distribution struct {
	scores []float64
}

// NewDistribution copies and sorts scores. NaN values are dropped.
func NewDistribution(scores []float64) *Distribution {
	sorted := make([]float64, 0, len(scores))
	for _, s := range scores {
		if !math.IsNaN(s) {
			sorted = append(sorted, s)
		}
	}
	sort.Float64s(sorted)
	return &Distribution{scores: sorted}
}

// Len returns the number of historical scores
func (d *Distribution) Len() int {
	if d == nil {
		return 0
	}
	return len(d.scores)
}

// Percentile returns the mid-rank percentile of score within the distribution: the share
// of historical scores below it plus half the share equal to it. ok is false when the
// distribution is empty.
func (d *Distribution) Percentile(score float64) (int, bool) {
	if d.Len() == 0 {
		return 0, false
	}
	below := sort.SearchFloat64s(d.scores, score)
	notAbove := sort.Search(len(d.scores), func(i int) bool { return d.scores[i] > score })
	equal := notAbove - below

	p := (float64(below) + 0.5*float64(equal)) / float64(len(d.scores)) * 100
	return int(math.Round(math.Max(0, math.Min(100, p)))), true
}
