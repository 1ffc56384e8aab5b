package services

import (
	"testing"
	"time"

	"github.com/clearboard/clearboard-backend/internal/modules/trend"
)

func monthStats(direction trend.Direction, observations int, end time.Time) trend.Stats {
	return trend.Stats{
		PeriodType:       trend.PeriodMonth,
		PeriodEnd:        end,
		Direction:        direction,
		ObservationCount: observations,
	}
}

func TestConfidenceInputForEmptySeries(t *testing.T) {
	in := confidenceInputFor(nil, time.Now().UTC())
	if in.ObservationCount != 0 || in.TrendConsistency != 0 || in.DataRecency != 0 {
		t.Fatalf("empty series should produce a zero input, got %+v", in)
	}
}

func TestConfidenceInputForConsistentRecentSeries(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	stats := []trend.Stats{
		monthStats(trend.DirectionUp, 3, now.AddDate(0, -2, 0)),
		monthStats(trend.DirectionUp, 4, now.AddDate(0, -1, 0)),
		monthStats(trend.DirectionUp, 5, now),
	}
	in := confidenceInputFor(stats, now)
	if in.ObservationCount != 12 {
		t.Fatalf("expected 12 observations, got %d", in.ObservationCount)
	}
	if in.TrendConsistency != 1 {
		t.Fatalf("uniform directions should be fully consistent, got %v", in.TrendConsistency)
	}
	if in.ElementCoverage != 1 {
		t.Fatalf("all periods covered, got %v", in.ElementCoverage)
	}
	if in.DataRecency != 1 {
		t.Fatalf("series ending now should be fully recent, got %v", in.DataRecency)
	}
}

func TestConfidenceInputForMixedDirections(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	stats := []trend.Stats{
		monthStats(trend.DirectionUp, 2, now.AddDate(0, -2, 0)),
		monthStats(trend.DirectionDown, 2, now.AddDate(0, -1, 0)),
		monthStats(trend.DirectionUp, 2, now),
	}
	in := confidenceInputFor(stats, now)
	// Two of the last three periods share the latest direction.
	want := 2.0 / 3.0
	if diff := in.TrendConsistency - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("expected consistency %v, got %v", want, in.TrendConsistency)
	}
}

func TestConfidenceInputForStaleSeries(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	stats := []trend.Stats{
		monthStats(trend.DirectionStable, 2, now.AddDate(0, -6, 0)),
	}
	in := confidenceInputFor(stats, now)
	if in.DataRecency != 0 {
		t.Fatalf("data older than 90 days should have zero recency, got %v", in.DataRecency)
	}
}
