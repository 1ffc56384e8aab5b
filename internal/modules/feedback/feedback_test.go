package feedback

import (
	"math"
	"testing"
)

func TestConfidenceAdjustment_SpecValues(t *testing.T) {
	if got := ConfidenceAdjustment(10, 5); math.Abs(got-0.8) > 1e-9 {
		t.Fatalf("adjustment(10, 5) = %v, want 0.8", got)
	}
	if got := ConfidenceAdjustment(0, 0); got != 1.0 {
		t.Fatalf("adjustment(0, 0) = %v, want exactly 1.0", got)
	}
}

func TestConfidenceAdjustment_FloorAndCeiling(t *testing.T) {
	if got := ConfidenceAdjustment(1000, 100); got != 0.5 {
		t.Fatalf("adjustment should floor at 0.5, got %v", got)
	}
	// Negative mean delta pushes the raw value above 1; the ceiling holds.
	if got := ConfidenceAdjustment(1, -50); got != 1.0 {
		t.Fatalf("adjustment should cap at 1.0, got %v", got)
	}
}

func TestBiasFor_DeadZone(t *testing.T) {
	cases := []struct {
		delta float64
		want  BiasDirection
	}{
		{5, BiasLow},
		{2, BiasLow},
		{1.9, BiasNeutral},
		{0, BiasNeutral},
		{-1.9, BiasNeutral},
		{-2, BiasHigh},
		{-8, BiasHigh},
	}
	for _, c := range cases {
		if got := BiasFor(c.delta); got != c.want {
			t.Fatalf("BiasFor(%v) = %q, want %q", c.delta, got, c.want)
		}
	}
}

func TestSummarize_PerElementAggregates(t *testing.T) {
	log := []Correction{
		{ElementID: "d2a", OriginalAIScore: 70, CorrectedScore: 75, ExpertiseWeight: 1},
		{ElementID: "d2a", OriginalAIScore: 60, CorrectedScore: 67, ExpertiseWeight: 2},
		{ElementID: "d3b", OriginalAIScore: 80, CorrectedScore: 76, ExpertiseWeight: 1},
	}
	summaries := Summarize(log)
	if len(summaries) != 2 {
		t.Fatalf("summary count = %d, want 2", len(summaries))
	}

	d2a := summaries[0]
	if d2a.ElementID != "d2a" || d2a.CorrectionCount != 2 {
		t.Fatalf("unexpected first summary: %+v", d2a)
	}
	if math.Abs(d2a.AverageDelta-6) > 1e-9 {
		t.Fatalf("d2a mean delta = %v, want 6", d2a.AverageDelta)
	}
	// Weighted mean: (5*1 + 7*2) / 3.
	if math.Abs(d2a.WeightedAverageDelta-19.0/3.0) > 1e-9 {
		t.Fatalf("d2a weighted mean delta = %v", d2a.WeightedAverageDelta)
	}
	if math.Abs(d2a.DeltaStdDev-1) > 1e-9 {
		t.Fatalf("d2a delta std-dev = %v, want 1", d2a.DeltaStdDev)
	}
	if d2a.Bias != BiasLow {
		t.Fatalf("d2a bias = %q, want low (analyzer under-scores)", d2a.Bias)
	}
	if math.Abs(d2a.ConfidenceAdjustment-(1-6*0.02-2*0.01)) > 1e-9 {
		t.Fatalf("d2a adjustment = %v", d2a.ConfidenceAdjustment)
	}

	d3b := summaries[1]
	if d3b.Bias != BiasHigh {
		t.Fatalf("d3b bias = %q, want high (analyzer over-scores)", d3b.Bias)
	}
	if math.Abs(d3b.AverageDelta+4) > 1e-9 {
		t.Fatalf("d3b mean delta = %v, want -4", d3b.AverageDelta)
	}
}

func TestSummarizeElement_Empty(t *testing.T) {
	s := SummarizeElement("d1a", nil)
	if s.CorrectionCount != 0 || s.ConfidenceAdjustment != 1.0 || s.Bias != BiasNeutral {
		t.Fatalf("empty history summary = %+v", s)
	}
}

func TestSummarizeElement_ZeroExpertiseWeights(t *testing.T) {
	s := SummarizeElement("d1a", []Correction{
		{ElementID: "d1a", OriginalAIScore: 50, CorrectedScore: 60},
	})
	// No usable weights: the weighted mean falls back to the plain mean.
	if s.WeightedAverageDelta != s.AverageDelta {
		t.Fatalf("weighted mean should fall back to plain mean: %+v", s)
	}
}
