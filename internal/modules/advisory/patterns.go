package advisory

import (
	"github.com/clearboard/clearboard-backend/internal/modules/scoring"
	"github.com/clearboard/clearboard-backend/internal/modules/trend"
)

// DetectInput is the snapshot patterns are detected over. Stats must be
// chronological; TenureDays is days since the teacher's hire date.
type DetectInput struct {
	Stats      []trend.Stats
	TenureDays int
}

const (
	// newTeacherTenureDays marks the onboarding window during which a
	// standing observation cadence is suggested.
	newTeacherTenureDays = 90
	// volatileStdDev mirrors the risk model's medium volatility band.
	volatileStdDev = 15.0
	// lowRunLength periods below the yellow cutoff count as consistent low;
	// the same window at or above the green cutoff counts as high performing.
	lowRunLength = 3
)

// DetectPatterns reports every pattern present in the snapshot, in a
// stable order. Patterns are independent; more than one can fire.
func DetectPatterns(in DetectInput, t scoring.Thresholds) []Pattern {
	var out []Pattern
	n := len(in.Stats)

	if n >= 2 && in.Stats[n-1].Direction == trend.DirectionDown {
		out = append(out, PatternDecliningTrend)
	}
	if runBelow(in.Stats, t.YellowMin, lowRunLength) {
		out = append(out, PatternConsistentLow)
	}
	if improvementStalled(in.Stats) {
		out = append(out, PatternImprovementStall)
	}
	if runAtOrAbove(in.Stats, t.GreenMin, lowRunLength) {
		out = append(out, PatternHighPerformer)
	}
	if n > 0 && in.Stats[n-1].StdDeviation > volatileStdDev {
		out = append(out, PatternVolatileScores)
	}
	if in.TenureDays >= 0 && in.TenureDays < newTeacherTenureDays {
		out = append(out, PatternNewTeacher)
	}
	return out
}

func runBelow(stats []trend.Stats, cutoff float64, length int) bool {
	if len(stats) < length {
		return false
	}
	for _, s := range stats[len(stats)-length:] {
		if s.Average >= cutoff {
			return false
		}
	}
	return true
}

func runAtOrAbove(stats []trend.Stats, cutoff float64, length int) bool {
	if len(stats) < length {
		return false
	}
	for _, s := range stats[len(stats)-length:] {
		if s.Average < cutoff {
			return false
		}
	}
	return true
}

// improvementStalled fires when an upward run has gone flat: at least one
// up period followed by two or more stable periods with no decline since.
func improvementStalled(stats []trend.Stats) bool {
	n := len(stats)
	if n < 3 {
		return false
	}
	if stats[n-1].Direction != trend.DirectionStable || stats[n-2].Direction != trend.DirectionStable {
		return false
	}
	for i := n - 3; i >= 0; i-- {
		switch stats[i].Direction {
		case trend.DirectionUp:
			return true
		case trend.DirectionDown:
			return false
		}
	}
	return false
}
