package trend

import "time"

// RegressionTrigger is the relative decline between consecutive periods
// that flags a regression: 10%.
const RegressionTrigger = 0.10

// ProgressTrigger is the symmetric relative improvement threshold.
const ProgressTrigger = 0.10

// RegressionAlert summarizes a sustained decline ending at one period.
type RegressionAlert struct {
	PeriodStart     time.Time `json:"period_start"`
	PeriodEnd       time.Time `json:"period_end"`
	PreviousScore   float64   `json:"previous_score"`
	CurrentScore    float64   `json:"current_score"`
	DeclinePercent  float64   `json:"decline_percent"`
	PeriodsAffected int       `json:"periods_affected"`
}

// ProgressReport summarizes a sustained improvement ending at one period.
type ProgressReport struct {
	PeriodStart        time.Time `json:"period_start"`
	PeriodEnd          time.Time `json:"period_end"`
	PreviousScore      float64   `json:"previous_score"`
	CurrentScore       float64   `json:"current_score"`
	ImprovementPercent float64   `json:"improvement_percent"`
	PeriodsImproved    int       `json:"periods_improved"`
	Consistency        float64   `json:"consistency"`
}

// DetectRegressions walks the ordered period stats and emits one alert
// per maximal run of declining periods that contains at least one drop of
// RegressionTrigger or more. The alert lands on the last triggering
// period of the run; PeriodsAffected counts the consecutive declining
// periods from the start of the run through that period.
func DetectRegressions(stats []Stats) []RegressionAlert {
	var alerts []RegressionAlert
	i := 1
	for i < len(stats) {
		if stats[i].ScoreChange >= 0 {
			i++
			continue
		}
		runStart := i
		lastTrigger := -1
		for i < len(stats) && stats[i].ScoreChange < 0 {
			prev := stats[i-1].Average
			if prev > 0 && (stats[i].Average-prev)/prev <= -RegressionTrigger {
				lastTrigger = i
			}
			i++
		}
		if lastTrigger < 0 {
			continue
		}
		prev := stats[lastTrigger-1].Average
		cur := stats[lastTrigger].Average
		alerts = append(alerts, RegressionAlert{
			PeriodStart:     stats[lastTrigger].PeriodStart,
			PeriodEnd:       stats[lastTrigger].PeriodEnd,
			PreviousScore:   prev,
			CurrentScore:    cur,
			DeclinePercent:  (prev - cur) / prev * 100,
			PeriodsAffected: lastTrigger - runStart + 1,
		})
	}
	return alerts
}

// DetectProgress is the improving-run counterpart of DetectRegressions.
// Consistency is the literal ratio of improving steps to total steps in
// the window from the start of the run through the reported period.
func DetectProgress(stats []Stats) []ProgressReport {
	var reports []ProgressReport
	i := 1
	for i < len(stats) {
		if stats[i].ScoreChange <= 0 {
			i++
			continue
		}
		runStart := i
		lastTrigger := -1
		for i < len(stats) && stats[i].ScoreChange > 0 {
			prev := stats[i-1].Average
			if prev > 0 && (stats[i].Average-prev)/prev >= ProgressTrigger {
				lastTrigger = i
			}
			i++
		}
		if lastTrigger < 0 {
			continue
		}
		prev := stats[lastTrigger-1].Average
		cur := stats[lastTrigger].Average
		steps := lastTrigger - runStart + 1
		improved := 0
		for j := runStart; j <= lastTrigger; j++ {
			if stats[j].ScoreChange > 0 {
				improved++
			}
		}
		reports = append(reports, ProgressReport{
			PeriodStart:        stats[lastTrigger].PeriodStart,
			PeriodEnd:          stats[lastTrigger].PeriodEnd,
			PreviousScore:      prev,
			CurrentScore:       cur,
			ImprovementPercent: (cur - prev) / prev * 100,
			PeriodsImproved:    steps,
			Consistency:        float64(improved) / float64(steps),
		})
	}
	return reports
}
