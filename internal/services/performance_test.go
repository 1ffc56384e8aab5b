package services

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/clearboard/clearboard-backend/internal/modules/trend"
	"github.com/clearboard/clearboard-backend/internal/types"
)

func TestWeakAreasBelowCutoff(t *testing.T) {
	averages := map[string]float64{
		"1a": 55,
		"1b": 72,
		"2a": 40,
		"2b": 90,
	}
	weak := weakAreas(averages)
	if len(weak) != 2 {
		t.Fatalf("expected 2 weak areas, got %v", weak)
	}
	if weak[0] != "1a" || weak[1] != "2a" {
		t.Fatalf("unexpected weak areas %v", weak)
	}
}

func TestWeakAreasFallbackToLowestThree(t *testing.T) {
	averages := map[string]float64{
		"1a": 85,
		"1b": 72,
		"2a": 78,
		"2b": 90,
		"3a": 95,
	}
	weak := weakAreas(averages)
	if len(weak) != 3 {
		t.Fatalf("expected 3 fallback areas, got %v", weak)
	}
	if weak[0] != "1b" || weak[1] != "2a" || weak[2] != "1a" {
		t.Fatalf("expected lowest averages first, got %v", weak)
	}
}

func TestMatchPeerScoresAndReason(t *testing.T) {
	target := &types.Teacher{ID: uuid.New(), Name: "Target", Subject: "Math"}
	peer := &types.Teacher{ID: uuid.New(), Name: "Peer", Subject: "Math"}
	weak := []string{"1a", "2a"}
	targetAvg := map[string]float64{"1a": 50, "2a": 55}
	peerAvg := map[string]float64{"1a": 90, "2a": 65}
	names := map[string]string{"1a": "Planning", "2a": "Environment"}

	rec, ok := matchPeer(target, peer, weak, targetAvg, peerAvg, names, names)
	if !ok {
		t.Fatalf("expected a match")
	}
	if len(rec.Strengths) != 1 || rec.Strengths[0].ElementID != "1a" {
		t.Fatalf("expected one strength in 1a, got %+v", rec.Strengths)
	}
	// (90-50)/100 over 2 weak areas.
	if rec.MatchScore != 0.2 {
		t.Fatalf("expected match score 0.2, got %v", rec.MatchScore)
	}
	want := "Strong in Planning (same subject area)"
	if rec.Reason != want {
		t.Fatalf("expected reason %q, got %q", want, rec.Reason)
	}
}

func TestMatchPeerNoStrengths(t *testing.T) {
	target := &types.Teacher{ID: uuid.New(), Subject: "Math"}
	peer := &types.Teacher{ID: uuid.New(), Subject: "Science"}
	_, ok := matchPeer(target, peer, []string{"1a"},
		map[string]float64{"1a": 50},
		map[string]float64{"1a": 65},
		nil, nil)
	if ok {
		t.Fatalf("peer below the strong cutoff should not match")
	}
}

func TestMatchPeerScoreCappedAtOne(t *testing.T) {
	target := &types.Teacher{ID: uuid.New()}
	peer := &types.Teacher{ID: uuid.New()}
	// Missing target average falls back to 50.
	rec, ok := matchPeer(target, peer, []string{"1a"},
		map[string]float64{},
		map[string]float64{"1a": 100},
		nil, map[string]string{"1a": "Planning"})
	if !ok {
		t.Fatalf("expected a match")
	}
	if rec.MatchScore > 1.0 {
		t.Fatalf("match score must be capped at 1.0, got %v", rec.MatchScore)
	}
}

func TestElementHistoryFoldsChronologically(t *testing.T) {
	a1 := &types.Assessment{ElementScores: []byte(`[{"element_id":"1a","element_name":"Planning","score":60}]`)}
	a2 := &types.Assessment{ElementScores: []byte(`[{"element_id":"1a","element_name":"Planning","score":80,"observations":["better pacing"]}]`)}
	history := elementHistory([]*types.Assessment{a1, a2})
	run, ok := history["1a"]
	if !ok {
		t.Fatalf("expected history for 1a")
	}
	if len(run.scores) != 2 || run.scores[0] != 60 || run.scores[1] != 80 {
		t.Fatalf("unexpected score series %v", run.scores)
	}
	if len(run.observations) != 1 || run.observations[0] != "better pacing" {
		t.Fatalf("unexpected observations %v", run.observations)
	}
}

func TestAssessmentConfidenceAveragesPresentValues(t *testing.T) {
	a := &types.Assessment{ElementScores: []byte(`[
		{"element_id":"1a","score":60,"confidence":0.8},
		{"element_id":"1b","score":70},
		{"element_id":"2a","score":80,"confidence":0.6}
	]`)}
	conf := assessmentConfidence(a, nil)
	if conf == nil {
		t.Fatalf("expected a confidence average")
	}
	if diff := *conf - 0.7; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("expected 0.7, got %v", *conf)
	}
	empty := &types.Assessment{ElementScores: []byte(`[{"element_id":"1a","score":60}]`)}
	if assessmentConfidence(empty, nil) != nil {
		t.Fatalf("no confidences should yield nil")
	}
}

func TestStatsFromPointsRoundTrip(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	points := []*types.TrendPoint{{
		PeriodStart:      start,
		PeriodEnd:        start.AddDate(0, 1, -1),
		AverageScore:     75,
		ScoreChange:      -8,
		TrendDirection:   string(trend.DirectionDown),
		ObservationCount: 4,
		MinScore:         60,
		MaxScore:         90,
		StdDeviation:     11,
	}}
	stats := statsFromPoints(points, trend.PeriodMonth)
	if len(stats) != 1 {
		t.Fatalf("expected 1 stat, got %d", len(stats))
	}
	s := stats[0]
	if s.Average != 75 || s.Direction != trend.DirectionDown || s.ObservationCount != 4 {
		t.Fatalf("unexpected stats %+v", s)
	}
	if s.PeriodType != trend.PeriodMonth {
		t.Fatalf("expected month period type, got %v", s.PeriodType)
	}
}
