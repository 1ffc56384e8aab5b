package advisory

import (
	"errors"
	"fmt"
	"time"
)

// Pattern is a named, detectable shape in a teacher's trend history.
type Pattern string

const (
	PatternDecliningTrend   Pattern = "declining_trend"
	PatternConsistentLow    Pattern = "consistent_low"
	PatternImprovementStall Pattern = "improvement_stall"
	PatternHighPerformer    Pattern = "high_performer"
	PatternVolatileScores   Pattern = "volatile_scores"
	PatternNewTeacher       Pattern = "new_teacher"
)

// SuggestionType is the kind of follow-up action a suggestion proposes.
type SuggestionType string

const (
	TypeObservation  SuggestionType = "observation"
	TypeIntervention SuggestionType = "intervention"
	TypeCoaching     SuggestionType = "coaching"
	TypeRecognition  SuggestionType = "recognition"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// TemplateFor maps a detected pattern to its suggestion type and
// priority. The mapping is fixed; unknown patterns are an error.
func TemplateFor(p Pattern) (SuggestionType, Priority, error) {
	switch p {
	case PatternDecliningTrend:
		return TypeObservation, PriorityHigh, nil
	case PatternConsistentLow:
		return TypeIntervention, PriorityHigh, nil
	case PatternImprovementStall:
		return TypeCoaching, PriorityMedium, nil
	case PatternHighPerformer:
		return TypeRecognition, PriorityLow, nil
	case PatternVolatileScores:
		return TypeCoaching, PriorityMedium, nil
	case PatternNewTeacher:
		return TypeObservation, PriorityMedium, nil
	default:
		return "", "", fmt.Errorf("unknown pattern %q", p)
	}
}

// Status is the suggestion lifecycle state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
	StatusExpired   Status = "expired"
)

// ErrInvalidStateTransition is returned for any status change the
// lifecycle does not permit. Callers must surface it, never swallow it.
var ErrInvalidStateTransition = errors.New("invalid suggestion status transition")

// Transition validates a status change. pending may move to accepted,
// rejected or expired; accepted to completed or expired; rejected,
// completed and expired are terminal.
func Transition(from, to Status) error {
	allowed := false
	switch from {
	case StatusPending:
		allowed = to == StatusAccepted || to == StatusRejected || to == StatusExpired
	case StatusAccepted:
		allowed = to == StatusCompleted || to == StatusExpired
	case StatusRejected, StatusCompleted, StatusExpired:
		allowed = false
	default:
		return fmt.Errorf("%w: unknown status %q", ErrInvalidStateTransition, from)
	}
	if !allowed {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidStateTransition, from, to)
	}
	return nil
}

// DefaultExpirationDays is how long a suggestion stays actionable.
const DefaultExpirationDays = 30

// ExpiresAt computes the expiry instant. expirationDays <= 0 falls back
// to the default.
func ExpiresAt(createdAt time.Time, expirationDays int) time.Time {
	if expirationDays <= 0 {
		expirationDays = DefaultExpirationDays
	}
	return createdAt.AddDate(0, 0, expirationDays)
}

// IsExpired reports whether a pending or accepted suggestion has passed
// its expiry. Terminal states never expire again.
func IsExpired(status Status, createdAt, now time.Time, expirationDays int) bool {
	if status != StatusPending && status != StatusAccepted {
		return false
	}
	return now.After(ExpiresAt(createdAt, expirationDays))
}

// ConfidenceInput carries the sub-factors blended into a suggestion's
// confidence score. The float factors are expected in [0,1] and are
// clamped defensively.
type ConfidenceInput struct {
	ObservationCount int
	TrendConsistency float64
	ElementCoverage  float64
	DataRecency      float64
}

// ConfidenceScore blends normalized observation volume (weight 0.3),
// trend consistency (0.3), element coverage (0.2) and data recency (0.2)
// into [0,1].
func ConfidenceScore(in ConfidenceInput) float64 {
	obs := float64(in.ObservationCount) / 10
	if obs > 1 {
		obs = 1
	}
	if obs < 0 {
		obs = 0
	}
	score := 0.3*obs +
		0.3*clamp01(in.TrendConsistency) +
		0.2*clamp01(in.ElementCoverage) +
		0.2*clamp01(in.DataRecency)
	return clamp01(score)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
