package scoring

import "testing"

func fp(v float64) *float64 { return &v }

func TestProblemScore_DecreasingInCurrentScore(t *testing.T) {
	low := ProblemScore(40, nil, 1, 0, nil)
	high := ProblemScore(80, nil, 1, 0, nil)
	if low <= high {
		t.Fatalf("score 40 urgency (%v) should exceed score 80 urgency (%v)", low, high)
	}
}

func TestProblemScore_RegressionRaisesUrgency(t *testing.T) {
	declined := ProblemScore(60, fp(80), 1, 0, nil)
	flat := ProblemScore(60, fp(60), 1, 0, nil)
	if declined <= flat {
		t.Fatalf("decline from 80 (%v) should outrank stable 60 (%v)", declined, flat)
	}
	noPrior := ProblemScore(60, nil, 1, 0, nil)
	if flat != noPrior {
		t.Fatalf("stable prior (%v) should match missing prior (%v)", flat, noPrior)
	}
}

func TestProblemScore_MonotonicInWeightObservationsConfidence(t *testing.T) {
	base := ProblemScore(70, nil, 1, 2, fp(0.5))
	if got := ProblemScore(70, nil, 2, 2, fp(0.5)); got < base {
		t.Fatalf("heavier weight lowered urgency: %v < %v", got, base)
	}
	if got := ProblemScore(70, nil, 1, 5, fp(0.5)); got < base {
		t.Fatalf("more observations lowered urgency: %v < %v", got, base)
	}
	if got := ProblemScore(70, nil, 1, 2, fp(0.9)); got < base {
		t.Fatalf("higher confidence lowered urgency: %v < %v", got, base)
	}
}

func TestProblemScore_ObservationCountCapped(t *testing.T) {
	atCap := ProblemScore(70, nil, 1, 10, nil)
	beyond := ProblemScore(70, nil, 1, 50, nil)
	if atCap != beyond {
		t.Fatalf("observation contribution should cap at 10: %v != %v", atCap, beyond)
	}
}

func TestProblemScore_NeverNegative(t *testing.T) {
	if got := ProblemScore(200, nil, 0, 0, nil); got < 0 {
		t.Fatalf("problem score went negative: %v", got)
	}
}

func TestTopProblems_RanksWorstFirst(t *testing.T) {
	elements := []ScoredElement{
		{ElementID: "d1a", Score: 90, Weight: 1},
		{ElementID: "d2b", Score: 45, Weight: 1},
		{ElementID: "d3c", Score: 70, Weight: 1, PreviousScore: fp(95)},
		{ElementID: "d4d", Score: 85, Weight: 1},
		{ElementID: "d2d", Score: 50, Weight: 1},
	}
	top := TopProblems(elements, 0)
	if len(top) != 4 {
		t.Fatalf("default top-n should be 4, got %d", len(top))
	}
	if top[0].ElementID != "d2b" {
		t.Fatalf("worst element = %q, want d2b", top[0].ElementID)
	}
	for _, el := range top {
		if el.ElementID == "d1a" {
			t.Fatalf("best element d1a should not appear in top 4")
		}
	}
}

func TestTopProblems_DoesNotMutateInput(t *testing.T) {
	elements := []ScoredElement{
		{ElementID: "a", Score: 90, Weight: 1},
		{ElementID: "b", Score: 40, Weight: 1},
	}
	_ = TopProblems(elements, 1)
	if elements[0].ElementID != "a" {
		t.Fatalf("input slice was reordered")
	}
}
