package scoring

import (
	"math"
	"sort"
)

// ScoredElement is one framework element's current state as supplied by
// the caller. PreviousScore and AIConfidence are nil when unknown.
type ScoredElement struct {
	ElementID        string
	Score            float64
	Weight           float64
	PreviousScore    *float64
	ObservationCount int
	AIConfidence     *float64
}

const (
	problemDeficitFactor    = 1.2
	problemRegressionFactor = 2.0
	problemWeightFactor     = 3.0
	problemObservationCap   = 10
	problemObservationStep  = 5.0
	problemConfidenceFactor = 10.0
)

// ProblemScore ranks how urgently an element needs attention. Higher is
// worse. The score grows with the deficit below 100, with decline since
// the previous score, with element weight, with how often the element has
// been observed, and with AI confidence in the low score.
func ProblemScore(current float64, previous *float64, weight float64, observationCount int, aiConfidence *float64) float64 {
	deficit := math.Max(0, 100-current)
	regression := 0.0
	if previous != nil {
		regression = math.Max(0, *previous-current)
	}
	obs := observationCount
	if obs > problemObservationCap {
		obs = problemObservationCap
	}
	conf := 0.0
	if aiConfidence != nil {
		conf = *aiConfidence
	}
	score := deficit*problemDeficitFactor +
		regression*problemRegressionFactor +
		weight*problemWeightFactor +
		float64(obs)*problemObservationStep +
		conf*problemConfidenceFactor
	if score < 0 {
		return 0
	}
	return score
}

// TopProblems returns the n most urgent elements, worst first. n <= 0
// falls back to the roster default of 4.
func TopProblems(elements []ScoredElement, n int) []ScoredElement {
	if n <= 0 {
		n = 4
	}
	ranked := make([]ScoredElement, len(elements))
	copy(ranked, elements)
	sort.SliceStable(ranked, func(i, j int) bool {
		a := ranked[i]
		b := ranked[j]
		return ProblemScore(a.Score, a.PreviousScore, a.Weight, a.ObservationCount, a.AIConfidence) >
			ProblemScore(b.Score, b.PreviousScore, b.Weight, b.ObservationCount, b.AIConfidence)
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
