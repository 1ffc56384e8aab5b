package trend

import (
	"math"
	"time"
)

// Direction classifies the change between consecutive periods.
type Direction string

const (
	DirectionUp     Direction = "up"
	DirectionDown   Direction = "down"
	DirectionStable Direction = "stable"
)

// DefaultDirectionDeadband is the score-point change below which a period
// is considered stable.
const DefaultDirectionDeadband = 5.0

type AnalyzeConfig struct {
	// DirectionDeadband in score points; <= 0 falls back to the default.
	DirectionDeadband float64
}

// Stats are the per-period aggregates for one bucket.
type Stats struct {
	PeriodStart       time.Time  `json:"period_start"`
	PeriodEnd         time.Time  `json:"period_end"`
	PeriodType        PeriodType `json:"period_type"`
	Average           float64    `json:"average"`
	Min               float64    `json:"min"`
	Max               float64    `json:"max"`
	StdDeviation      float64    `json:"std_deviation"`
	ScoreChange       float64    `json:"score_change"`
	Direction         Direction  `json:"direction"`
	ObservationCount  int        `json:"observation_count"`
	ConfidenceAverage float64    `json:"confidence_average"`
}

// AnalyzeBuckets computes per-period statistics over chronologically
// ordered buckets. The first period has no predecessor, so its change is
// zero and its direction stable.
func AnalyzeBuckets(buckets []Bucket, pt PeriodType, cfg AnalyzeConfig) []Stats {
	deadband := cfg.DirectionDeadband
	if deadband <= 0 {
		deadband = DefaultDirectionDeadband
	}
	out := make([]Stats, 0, len(buckets))
	for i, b := range buckets {
		scores := make([]float64, 0, len(b.Observations))
		var confSum float64
		confCount := 0
		for _, o := range b.Observations {
			scores = append(scores, o.Score)
			if o.Confidence != nil {
				confSum += *o.Confidence
				confCount++
			}
		}
		s := Stats{
			PeriodStart:      b.Start,
			PeriodEnd:        b.End,
			PeriodType:       pt,
			Average:          mean(scores),
			Min:              minOf(scores),
			Max:              maxOf(scores),
			StdDeviation:     PopulationStdDev(scores),
			Direction:        DirectionStable,
			ObservationCount: len(scores),
		}
		if confCount > 0 {
			s.ConfidenceAverage = confSum / float64(confCount)
		}
		if i > 0 {
			s.ScoreChange = s.Average - out[i-1].Average
			switch {
			case s.ScoreChange > deadband:
				s.Direction = DirectionUp
			case s.ScoreChange < -deadband:
				s.Direction = DirectionDown
			}
		}
		out = append(out, s)
	}
	return out
}

// PercentileRank places score against a peer population: the share of
// peers strictly below, on a 0-100 scale. No peers yields 0.
func PercentileRank(score float64, peers []float64) float64 {
	if len(peers) == 0 {
		return 0
	}
	below := 0
	for _, p := range peers {
		if p < score {
			below++
		}
	}
	return 100 * float64(below) / float64(len(peers))
}

// PopulationStdDev divides by N, not N-1. Empty input yields 0.
func PopulationStdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := mean(values)
	var sq float64
	for _, v := range values {
		d := v - m
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(values)))
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func minOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
