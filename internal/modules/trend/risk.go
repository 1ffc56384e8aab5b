package trend

// RiskLevel buckets the additive risk score.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
	// RiskCritical is never derived from the formula; it is an explicit
	// override supplied by an upstream rule.
	RiskCritical RiskLevel = "critical"
)

// RiskInput is the snapshot PredictRisk scores. MissedObservations counts
// scheduled observations absent from the window. CriticalOverride forces
// the critical tier regardless of the computed score.
type RiskInput struct {
	Trend              Direction
	AverageScore       float64
	StdDeviation       float64
	MissedObservations int
	CriticalOverride   bool
}

// RiskAssessment carries the accumulated score, its level and the factor
// labels that contributed.
type RiskAssessment struct {
	Score   int       `json:"score"`
	Level   RiskLevel `json:"level"`
	Factors []string  `json:"factors"`
}

// PredictRisk sums independent additive factors and buckets the total:
// high at 60, medium at 30, low below.
func PredictRisk(in RiskInput) RiskAssessment {
	out := RiskAssessment{Factors: []string{}}

	switch in.Trend {
	case DirectionDown:
		out.Score += 30
		out.Factors = append(out.Factors, "declining trend")
	case DirectionStable:
		out.Score += 10
		out.Factors = append(out.Factors, "no recent improvement")
	}

	switch {
	case in.AverageScore < 60:
		out.Score += 40
		out.Factors = append(out.Factors, "average score below 60")
	case in.AverageScore < 70:
		out.Score += 25
		out.Factors = append(out.Factors, "average score below 70")
	case in.AverageScore < 80:
		out.Score += 10
		out.Factors = append(out.Factors, "average score below 80")
	}

	switch {
	case in.StdDeviation > 20:
		out.Score += 20
		out.Factors = append(out.Factors, "highly volatile scores")
	case in.StdDeviation > 10:
		out.Score += 10
		out.Factors = append(out.Factors, "volatile scores")
	}

	if in.MissedObservations > 0 {
		out.Score += 5 * in.MissedObservations
		out.Factors = append(out.Factors, "missed observations")
	}

	switch {
	case in.CriticalOverride:
		out.Level = RiskCritical
	case out.Score >= 60:
		out.Level = RiskHigh
	case out.Score >= 30:
		out.Level = RiskMedium
	default:
		out.Level = RiskLow
	}
	return out
}

// Forecast fits an ordinary least-squares line over scores indexed
// 0..n-1 and projects the next index. ok is false with fewer than two
// points or a degenerate x spread.
func Forecast(scores []float64) (slope, intercept, next float64, ok bool) {
	n := len(scores)
	if n < 2 {
		return 0, 0, 0, false
	}
	var sumX, sumY, sumXY, sumXX float64
	for i, y := range scores {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	fn := float64(n)
	den := fn*sumXX - sumX*sumX
	if den == 0 {
		return 0, 0, 0, false
	}
	slope = (fn*sumXY - sumX*sumY) / den
	intercept = (sumY - slope*sumX) / fn
	next = slope*fn + intercept
	return slope, intercept, next, true
}

// ForecastWindow restricts the fit to the most recent window points.
// window <= 0 uses the full series.
func ForecastWindow(scores []float64, window int) (slope, intercept, next float64, ok bool) {
	if window > 0 && len(scores) > window {
		scores = scores[len(scores)-window:]
	}
	return Forecast(scores)
}
