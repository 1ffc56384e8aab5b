package advisory

import (
	"testing"

	"github.com/clearboard/clearboard-backend/internal/modules/scoring"
	"github.com/clearboard/clearboard-backend/internal/modules/trend"
)

func statsSeq(averages []float64, dirs []trend.Direction, stdDev float64) []trend.Stats {
	out := make([]trend.Stats, len(averages))
	for i := range averages {
		out[i] = trend.Stats{Average: averages[i], Direction: dirs[i], StdDeviation: stdDev}
	}
	return out
}

func hasPattern(ps []Pattern, want Pattern) bool {
	for _, p := range ps {
		if p == want {
			return true
		}
	}
	return false
}

func TestDetectPatterns_DecliningTrend(t *testing.T) {
	th := scoring.DefaultThresholds()
	stats := statsSeq(
		[]float64{80, 72, 64},
		[]trend.Direction{trend.DirectionStable, trend.DirectionDown, trend.DirectionDown},
		5,
	)
	ps := DetectPatterns(DetectInput{Stats: stats, TenureDays: 500}, th)
	if !hasPattern(ps, PatternDecliningTrend) {
		t.Fatalf("expected declining_trend in %v", ps)
	}
}

func TestDetectPatterns_ConsistentLowAndHighPerformer(t *testing.T) {
	th := scoring.DefaultThresholds()
	low := statsSeq(
		[]float64{55, 52, 58},
		[]trend.Direction{trend.DirectionStable, trend.DirectionStable, trend.DirectionUp},
		5,
	)
	ps := DetectPatterns(DetectInput{Stats: low, TenureDays: 500}, th)
	if !hasPattern(ps, PatternConsistentLow) {
		t.Fatalf("expected consistent_low in %v", ps)
	}

	high := statsSeq(
		[]float64{85, 88, 90},
		[]trend.Direction{trend.DirectionStable, trend.DirectionStable, trend.DirectionStable},
		5,
	)
	ps = DetectPatterns(DetectInput{Stats: high, TenureDays: 500}, th)
	if !hasPattern(ps, PatternHighPerformer) {
		t.Fatalf("expected high_performer in %v", ps)
	}
	if hasPattern(ps, PatternConsistentLow) {
		t.Fatalf("high performer must not also be consistent_low")
	}
}

func TestDetectPatterns_ImprovementStall(t *testing.T) {
	th := scoring.DefaultThresholds()
	stalled := statsSeq(
		[]float64{60, 70, 71, 72},
		[]trend.Direction{trend.DirectionStable, trend.DirectionUp, trend.DirectionStable, trend.DirectionStable},
		5,
	)
	ps := DetectPatterns(DetectInput{Stats: stalled, TenureDays: 500}, th)
	if !hasPattern(ps, PatternImprovementStall) {
		t.Fatalf("expected improvement_stall in %v", ps)
	}

	// A decline after the climb is a decline, not a stall.
	declined := statsSeq(
		[]float64{60, 70, 62, 63},
		[]trend.Direction{trend.DirectionStable, trend.DirectionUp, trend.DirectionDown, trend.DirectionStable},
		5,
	)
	ps = DetectPatterns(DetectInput{Stats: declined, TenureDays: 500}, th)
	if hasPattern(ps, PatternImprovementStall) {
		t.Fatalf("decline should suppress improvement_stall: %v", ps)
	}
}

func TestDetectPatterns_VolatileAndNewTeacher(t *testing.T) {
	th := scoring.DefaultThresholds()
	stats := statsSeq([]float64{75}, []trend.Direction{trend.DirectionStable}, 22)
	ps := DetectPatterns(DetectInput{Stats: stats, TenureDays: 30}, th)
	if !hasPattern(ps, PatternVolatileScores) {
		t.Fatalf("expected volatile_scores in %v", ps)
	}
	if !hasPattern(ps, PatternNewTeacher) {
		t.Fatalf("expected new_teacher in %v", ps)
	}

	ps = DetectPatterns(DetectInput{Stats: stats, TenureDays: 91}, th)
	if hasPattern(ps, PatternNewTeacher) {
		t.Fatalf("tenure past onboarding window should not flag new_teacher")
	}
}

func TestDetectPatterns_EmptyHistory(t *testing.T) {
	th := scoring.DefaultThresholds()
	ps := DetectPatterns(DetectInput{Stats: nil, TenureDays: 10}, th)
	if len(ps) != 1 || ps[0] != PatternNewTeacher {
		t.Fatalf("empty history should only flag tenure: %v", ps)
	}
}
