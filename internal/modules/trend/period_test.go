package trend

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPeriodBounds_Month(t *testing.T) {
	start, end := PeriodBounds(date(2024, time.January, 15), PeriodMonth)
	if !start.Equal(date(2024, time.January, 1)) {
		t.Fatalf("month start = %v, want Jan 1", start)
	}
	if !end.Equal(date(2024, time.January, 31)) {
		t.Fatalf("month end = %v, want Jan 31", end)
	}
	// Leap February.
	start, end = PeriodBounds(date(2024, time.February, 10), PeriodMonth)
	if !end.Equal(date(2024, time.February, 29)) {
		t.Fatalf("leap Feb end = %v, want Feb 29", end)
	}
	_ = start
}

func TestPeriodBounds_Quarter(t *testing.T) {
	start, end := PeriodBounds(date(2024, time.February, 15), PeriodQuarter)
	if !start.Equal(date(2024, time.January, 1)) {
		t.Fatalf("Q1 start = %v, want Jan 1", start)
	}
	if !end.Equal(date(2024, time.March, 31)) {
		t.Fatalf("Q1 end = %v, want Mar 31", end)
	}
	start, end = PeriodBounds(date(2024, time.December, 1), PeriodQuarter)
	if !start.Equal(date(2024, time.October, 1)) || !end.Equal(date(2024, time.December, 31)) {
		t.Fatalf("Q4 bounds = %v..%v", start, end)
	}
}

func TestPeriodBounds_WeekStartsSunday(t *testing.T) {
	// 2024-01-15 is a Monday; its week runs Sun Jan 14 .. Sat Jan 20.
	start, end := PeriodBounds(date(2024, time.January, 15), PeriodWeek)
	if start.Weekday() != time.Sunday {
		t.Fatalf("week start weekday = %v, want Sunday", start.Weekday())
	}
	if !start.Equal(date(2024, time.January, 14)) || !end.Equal(date(2024, time.January, 20)) {
		t.Fatalf("week bounds = %v..%v", start, end)
	}
	// A Sunday is its own week start.
	start, _ = PeriodBounds(date(2024, time.January, 14), PeriodWeek)
	if !start.Equal(date(2024, time.January, 14)) {
		t.Fatalf("sunday week start = %v", start)
	}
}

func TestPeriodBounds_Year(t *testing.T) {
	start, end := PeriodBounds(date(2024, time.June, 30), PeriodYear)
	if !start.Equal(date(2024, time.January, 1)) || !end.Equal(date(2024, time.December, 31)) {
		t.Fatalf("year bounds = %v..%v", start, end)
	}
}

func TestPeriodBounds_DropsTimeOfDay(t *testing.T) {
	noon := time.Date(2024, time.March, 5, 12, 30, 45, 0, time.UTC)
	start, end := PeriodBounds(noon, PeriodMonth)
	if start.Hour() != 0 || end.Hour() != 0 {
		t.Fatalf("bounds carry time of day: %v..%v", start, end)
	}
}

func TestBucketObservations_GroupsAndOrders(t *testing.T) {
	obs := []Observation{
		{Date: date(2024, time.March, 3), Score: 70},
		{Date: date(2024, time.January, 10), Score: 80},
		{Date: date(2024, time.January, 25), Score: 60},
	}
	buckets := BucketObservations(obs, PeriodMonth)
	if len(buckets) != 2 {
		t.Fatalf("bucket count = %d, want 2", len(buckets))
	}
	if !buckets[0].Start.Equal(date(2024, time.January, 1)) {
		t.Fatalf("buckets not chronological: first start %v", buckets[0].Start)
	}
	if len(buckets[0].Observations) != 2 {
		t.Fatalf("january bucket has %d observations, want 2", len(buckets[0].Observations))
	}
}

func TestParsePeriodType(t *testing.T) {
	pt, err := ParsePeriodType("")
	if err != nil || pt != PeriodMonth {
		t.Fatalf("empty period type should default to month, got %v %v", pt, err)
	}
	if _, err := ParsePeriodType("decade"); err == nil {
		t.Fatalf("expected error for unknown period type")
	}
}
