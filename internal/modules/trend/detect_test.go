package trend

import (
	"math"
	"testing"
	"time"
)

func monthlyStats(t *testing.T, averages ...float64) []Stats {
	t.Helper()
	buckets := make([]Bucket, 0, len(averages))
	start := date(2024, time.January, 1)
	for i, avg := range averages {
		buckets = append(buckets, bucketWithScores(start.AddDate(0, i, 0), avg))
	}
	return AnalyzeBuckets(buckets, PeriodMonth, AnalyzeConfig{})
}

func TestDetectRegressions_ThreeConsecutiveDeclines(t *testing.T) {
	// Each step is exactly a 10% relative drop.
	stats := monthlyStats(t, 100, 90, 81, 72.9)
	alerts := DetectRegressions(stats)
	if len(alerts) != 1 {
		t.Fatalf("alert count = %d, want exactly 1", len(alerts))
	}
	a := alerts[0]
	if a.PeriodsAffected != 3 {
		t.Fatalf("periods affected = %d, want 3", a.PeriodsAffected)
	}
	if a.PreviousScore != 81 || math.Abs(a.CurrentScore-72.9) > 1e-9 {
		t.Fatalf("alert scores = %v -> %v, want 81 -> 72.9", a.PreviousScore, a.CurrentScore)
	}
	if math.Abs(a.DeclinePercent-10) > 1e-9 {
		t.Fatalf("decline percent = %v, want 10", a.DeclinePercent)
	}
}

func TestDetectRegressions_SingleSharpDrop(t *testing.T) {
	stats := monthlyStats(t, 80, 64, 70)
	alerts := DetectRegressions(stats)
	if len(alerts) != 1 {
		t.Fatalf("alert count = %d, want 1", len(alerts))
	}
	if alerts[0].PeriodsAffected != 1 {
		t.Fatalf("periods affected = %d, want 1", alerts[0].PeriodsAffected)
	}
	if math.Abs(alerts[0].DeclinePercent-20) > 1e-9 {
		t.Fatalf("decline percent = %v, want 20", alerts[0].DeclinePercent)
	}
}

func TestDetectRegressions_ShallowDeclineDoesNotTrigger(t *testing.T) {
	stats := monthlyStats(t, 80, 78, 76, 74)
	if alerts := DetectRegressions(stats); len(alerts) != 0 {
		t.Fatalf("shallow decline produced alerts: %+v", alerts)
	}
}

func TestDetectRegressions_TwoSeparateRuns(t *testing.T) {
	stats := monthlyStats(t, 100, 85, 90, 75)
	alerts := DetectRegressions(stats)
	if len(alerts) != 2 {
		t.Fatalf("alert count = %d, want 2 (one per run)", len(alerts))
	}
	if alerts[0].PeriodsAffected != 1 || alerts[1].PeriodsAffected != 1 {
		t.Fatalf("unexpected run lengths: %+v", alerts)
	}
}

func TestDetectRegressions_InsufficientData(t *testing.T) {
	if alerts := DetectRegressions(monthlyStats(t, 70)); len(alerts) != 0 {
		t.Fatalf("single period should not alert")
	}
	if alerts := DetectRegressions(nil); len(alerts) != 0 {
		t.Fatalf("empty stats should not alert")
	}
}

func TestDetectProgress_ImprovingRun(t *testing.T) {
	stats := monthlyStats(t, 60, 67, 75)
	reports := DetectProgress(stats)
	if len(reports) != 1 {
		t.Fatalf("report count = %d, want 1", len(reports))
	}
	r := reports[0]
	if r.PeriodsImproved != 2 {
		t.Fatalf("periods improved = %d, want 2", r.PeriodsImproved)
	}
	if r.Consistency != 1.0 {
		t.Fatalf("consistency = %v, want 1.0 for strictly increasing run", r.Consistency)
	}
	if math.Abs(r.ImprovementPercent-(75.0-67.0)/67.0*100) > 1e-9 {
		t.Fatalf("improvement percent = %v", r.ImprovementPercent)
	}
}

func TestDetectProgress_SlowGainDoesNotTrigger(t *testing.T) {
	stats := monthlyStats(t, 70, 72, 74, 76)
	if reports := DetectProgress(stats); len(reports) != 0 {
		t.Fatalf("sub-threshold gains produced reports: %+v", reports)
	}
}
