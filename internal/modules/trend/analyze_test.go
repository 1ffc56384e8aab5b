package trend

import (
	"math"
	"testing"
	"time"
)

func bucketWithScores(start time.Time, scores ...float64) Bucket {
	b := Bucket{Start: start, End: start.AddDate(0, 1, -1)}
	for _, s := range scores {
		b.Observations = append(b.Observations, Observation{Date: start, Score: s})
	}
	return b
}

func TestPopulationStdDev(t *testing.T) {
	got := PopulationStdDev([]float64{75, 80, 85, 70, 90})
	if math.Abs(got-7.0711) > 0.001 {
		t.Fatalf("population std-dev = %v, want ~7.07", got)
	}
	if PopulationStdDev(nil) != 0 {
		t.Fatalf("empty std-dev should be 0")
	}
	if PopulationStdDev([]float64{42}) != 0 {
		t.Fatalf("single-value std-dev should be 0")
	}
}

func TestAnalyzeBuckets_StatsAndDirection(t *testing.T) {
	jan := date(2024, time.January, 1)
	feb := date(2024, time.February, 1)
	mar := date(2024, time.March, 1)
	stats := AnalyzeBuckets([]Bucket{
		bucketWithScores(jan, 70, 80),
		bucketWithScores(feb, 85, 95),
		bucketWithScores(mar, 88, 92),
	}, PeriodMonth, AnalyzeConfig{})

	if len(stats) != 3 {
		t.Fatalf("stats count = %d", len(stats))
	}
	first := stats[0]
	if first.Average != 75 || first.Min != 70 || first.Max != 80 {
		t.Fatalf("first period stats = %+v", first)
	}
	if first.ScoreChange != 0 || first.Direction != DirectionStable {
		t.Fatalf("first period should be stable with zero change: %+v", first)
	}
	second := stats[1]
	if second.ScoreChange != 15 || second.Direction != DirectionUp {
		t.Fatalf("second period change = %v dir = %v, want 15/up", second.ScoreChange, second.Direction)
	}
	third := stats[2]
	// 90 - 90 = 0: inside the deadband.
	if third.Direction != DirectionStable {
		t.Fatalf("third period direction = %v, want stable", third.Direction)
	}
}

func TestAnalyzeBuckets_DeadbandBoundary(t *testing.T) {
	jan := date(2024, time.January, 1)
	feb := date(2024, time.February, 1)
	stats := AnalyzeBuckets([]Bucket{
		bucketWithScores(jan, 70),
		bucketWithScores(feb, 75),
	}, PeriodMonth, AnalyzeConfig{})
	// Change of exactly +5 is not above the deadband.
	if stats[1].Direction != DirectionStable {
		t.Fatalf("change of exactly 5 should be stable, got %v", stats[1].Direction)
	}

	stats = AnalyzeBuckets([]Bucket{
		bucketWithScores(jan, 70),
		bucketWithScores(feb, 75.5),
	}, PeriodMonth, AnalyzeConfig{})
	if stats[1].Direction != DirectionUp {
		t.Fatalf("change of 5.5 should be up, got %v", stats[1].Direction)
	}

	stats = AnalyzeBuckets([]Bucket{
		bucketWithScores(jan, 70),
		bucketWithScores(feb, 62),
	}, PeriodMonth, AnalyzeConfig{DirectionDeadband: 10})
	if stats[1].Direction != DirectionStable {
		t.Fatalf("custom deadband ignored: %v", stats[1].Direction)
	}
}

func TestAnalyzeBuckets_ConfidenceAverage(t *testing.T) {
	jan := date(2024, time.January, 1)
	c1, c2 := 0.8, 0.6
	b := Bucket{Start: jan, End: jan.AddDate(0, 1, -1), Observations: []Observation{
		{Date: jan, Score: 70, Confidence: &c1},
		{Date: jan, Score: 75, Confidence: &c2},
		{Date: jan, Score: 80},
	}}
	stats := AnalyzeBuckets([]Bucket{b}, PeriodMonth, AnalyzeConfig{})
	if math.Abs(stats[0].ConfidenceAverage-0.7) > 1e-9 {
		t.Fatalf("confidence average = %v, want 0.7", stats[0].ConfidenceAverage)
	}
}

func TestPercentileRank(t *testing.T) {
	peers := []float64{50, 60, 70, 80}
	if got := PercentileRank(75, peers); got != 75 {
		t.Fatalf("percentile = %v, want 75", got)
	}
	if got := PercentileRank(40, peers); got != 0 {
		t.Fatalf("bottom percentile = %v, want 0", got)
	}
	// Equal scores do not count as "below".
	if got := PercentileRank(70, peers); got != 50 {
		t.Fatalf("tied percentile = %v, want 50", got)
	}
	if got := PercentileRank(90, nil); got != 0 {
		t.Fatalf("empty peer population should yield 0, got %v", got)
	}
}
