package feedback

import (
	"sort"

	"github.com/clearboard/clearboard-backend/internal/modules/trend"
)

// Correction is one human override of an automated element score.
// Delta convention: corrected minus original, so a positive delta means
// the reviewer scored higher than the analyzer did.
type Correction struct {
	ElementID       string
	OriginalAIScore float64
	CorrectedScore  float64
	ExpertiseWeight float64
}

func (c Correction) Delta() float64 {
	return c.CorrectedScore - c.OriginalAIScore
}

// BiasDirection labels which way the analyzer drifts on an element.
type BiasDirection string

const (
	// BiasHigh: the analyzer over-scores (mean delta negative).
	BiasHigh BiasDirection = "high"
	// BiasLow: the analyzer under-scores (mean delta positive).
	BiasLow     BiasDirection = "low"
	BiasNeutral BiasDirection = "neutral"
)

// BiasDeadZone is the |mean delta| below which an element is neutral.
const BiasDeadZone = 2.0

// ElementSummary aggregates the full correction history of one element.
// Everything here is recomputed from the log slice on every call; there
// are no running counters to drift.
type ElementSummary struct {
	ElementID            string        `json:"element_id"`
	CorrectionCount      int           `json:"correction_count"`
	AverageDelta         float64       `json:"average_delta"`
	WeightedAverageDelta float64       `json:"weighted_average_delta"`
	DeltaStdDev          float64       `json:"delta_std_dev"`
	Bias                 BiasDirection `json:"bias"`
	ConfidenceAdjustment float64       `json:"confidence_adjustment"`
}

// ConfidenceAdjustment shrinks trust in automated scores as corrections
// accumulate: clamp(1 - avgDelta*0.02 - count*0.01, 0.5, 1.0). Zero
// corrections always yields exactly 1.0.
func ConfidenceAdjustment(correctionCount int, avgDelta float64) float64 {
	if correctionCount == 0 {
		return 1.0
	}
	adj := 1.0 - avgDelta*0.02 - float64(correctionCount)*0.01
	if adj < 0.5 {
		return 0.5
	}
	if adj > 1.0 {
		return 1.0
	}
	return adj
}

// BiasFor maps a mean delta to a bias direction with the dead-zone.
func BiasFor(meanDelta float64) BiasDirection {
	switch {
	case meanDelta >= BiasDeadZone:
		return BiasLow
	case meanDelta <= -BiasDeadZone:
		return BiasHigh
	default:
		return BiasNeutral
	}
}

// Summarize folds an append-only correction log into per-element
// diagnostics, ordered by element id. Std-dev uses the population
// formula.
func Summarize(log []Correction) []ElementSummary {
	byElement := map[string][]Correction{}
	for _, c := range log {
		byElement[c.ElementID] = append(byElement[c.ElementID], c)
	}
	ids := make([]string, 0, len(byElement))
	for id := range byElement {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]ElementSummary, 0, len(ids))
	for _, id := range ids {
		out = append(out, SummarizeElement(id, byElement[id]))
	}
	return out
}

// SummarizeElement computes the diagnostics for one element's slice of
// the log. An empty slice yields the neutral summary with adjustment 1.0.
func SummarizeElement(elementID string, corrections []Correction) ElementSummary {
	s := ElementSummary{
		ElementID:            elementID,
		CorrectionCount:      len(corrections),
		Bias:                 BiasNeutral,
		ConfidenceAdjustment: 1.0,
	}
	if len(corrections) == 0 {
		return s
	}

	deltas := make([]float64, 0, len(corrections))
	var sum, weightedSum, weightSum float64
	for _, c := range corrections {
		d := c.Delta()
		deltas = append(deltas, d)
		sum += d
		weightedSum += d * c.ExpertiseWeight
		weightSum += c.ExpertiseWeight
	}
	s.AverageDelta = sum / float64(len(deltas))
	if weightSum > 0 {
		s.WeightedAverageDelta = weightedSum / weightSum
	} else {
		s.WeightedAverageDelta = s.AverageDelta
	}
	s.DeltaStdDev = trend.PopulationStdDev(deltas)
	s.Bias = BiasFor(s.AverageDelta)
	s.ConfidenceAdjustment = ConfidenceAdjustment(len(deltas), s.AverageDelta)
	return s
}
