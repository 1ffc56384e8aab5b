package trend

import (
	"fmt"
	"sort"
	"time"
)

// PeriodType is the calendar window observations are grouped into.
type PeriodType string

const (
	PeriodWeek    PeriodType = "week"
	PeriodMonth   PeriodType = "month"
	PeriodQuarter PeriodType = "quarter"
	PeriodYear    PeriodType = "year"
)

func ParsePeriodType(s string) (PeriodType, error) {
	switch PeriodType(s) {
	case PeriodWeek, PeriodMonth, PeriodQuarter, PeriodYear:
		return PeriodType(s), nil
	case "":
		return PeriodMonth, nil
	default:
		return "", fmt.Errorf("unknown period type %q", s)
	}
}

// PeriodBounds returns the inclusive date-only [start, end] of the period
// containing date. Weeks start on Sunday and span 7 days; months, quarters
// and years follow calendar boundaries.
func PeriodBounds(date time.Time, pt PeriodType) (time.Time, time.Time) {
	y, m, d := date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	switch pt {
	case PeriodWeek:
		start := day.AddDate(0, 0, -int(day.Weekday()))
		return start, start.AddDate(0, 0, 6)
	case PeriodQuarter:
		qm := time.Month((int(m)-1)/3*3 + 1)
		start := time.Date(y, qm, 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 3, -1)
	case PeriodYear:
		start := time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
		return start, time.Date(y, time.December, 31, 0, 0, 0, 0, time.UTC)
	default:
		start := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, -1)
	}
}

// Observation is one dated score supplied by the caller. Confidence is
// nil when the score was entered by a human rather than the analyzer.
type Observation struct {
	Date       time.Time
	Score      float64
	Confidence *float64
}

// Bucket is the set of observations falling inside one period.
type Bucket struct {
	Start        time.Time
	End          time.Time
	Observations []Observation
}

// BucketObservations groups observations into periods of the given type,
// ordered chronologically. Empty periods between occupied ones are not
// materialized; callers that need gap awareness count missed observations
// via risk input instead.
func BucketObservations(obs []Observation, pt PeriodType) []Bucket {
	byStart := map[time.Time]*Bucket{}
	for _, o := range obs {
		start, end := PeriodBounds(o.Date, pt)
		b, ok := byStart[start]
		if !ok {
			b = &Bucket{Start: start, End: end}
			byStart[start] = b
		}
		b.Observations = append(b.Observations, o)
	}
	buckets := make([]Bucket, 0, len(byStart))
	for _, b := range byStart {
		buckets = append(buckets, *b)
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Start.Before(buckets[j].Start) })
	return buckets
}
