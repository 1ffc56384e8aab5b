package scoring

import (
	"fmt"
)

// Color is the three-band status shown on the roster heatmap.
type Color string

const (
	ColorGreen  Color = "green"
	ColorYellow Color = "yellow"
	ColorRed    Color = "red"
)

// Thresholds holds the band cutoffs on the 0-100 scale. A score at or
// above GreenMin is green, at or above YellowMin is yellow, below is red.
type Thresholds struct {
	GreenMin  float64 `json:"green_min"`
	YellowMin float64 `json:"yellow_min"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{GreenMin: 80, YellowMin: 60}
}

// Validate rejects threshold configs that would make Classify degenerate
// (never green, or always red). Callers validate once at config load.
func (t Thresholds) Validate() error {
	if t.YellowMin < 0 || t.GreenMin > 100 {
		return fmt.Errorf("thresholds out of range [0,100]: green_min=%v yellow_min=%v", t.GreenMin, t.YellowMin)
	}
	if t.YellowMin >= t.GreenMin {
		return fmt.Errorf("yellow_min (%v) must be below green_min (%v)", t.YellowMin, t.GreenMin)
	}
	return nil
}

// Classify maps a score into a color band. Band edges are inclusive on
// the lower bound. Out-of-range scores simply land in the outer bands.
func Classify(score float64, t Thresholds) Color {
	switch {
	case score >= t.GreenMin:
		return ColorGreen
	case score >= t.YellowMin:
		return ColorYellow
	default:
		return ColorRed
	}
}

// Policy selects how a set of weighted element scores collapses into one
// column score.
type Policy int

const (
	PolicyWeighted Policy = iota
	PolicyWorst
	PolicyMajority
)

func (p Policy) String() string {
	switch p {
	case PolicyWeighted:
		return "weighted"
	case PolicyWorst:
		return "worst"
	case PolicyMajority:
		return "majority"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "weighted", "":
		return PolicyWeighted, nil
	case "worst":
		return PolicyWorst, nil
	case "majority":
		return PolicyMajority, nil
	default:
		return PolicyWeighted, fmt.Errorf("unknown aggregation policy %q", s)
	}
}

// WeightedScore is one element's contribution to a column score.
type WeightedScore struct {
	Score  float64
	Weight float64
}

// Result is an aggregated column score plus its color band.
type Result struct {
	NumericScore float64 `json:"numeric_score"`
	Color        Color   `json:"color"`
}

// ComputeColumnScore collapses scores under the given policy and colors
// the outcome. An empty input always yields {0, red}.
func ComputeColumnScore(scores []WeightedScore, p Policy, t Thresholds) Result {
	if len(scores) == 0 {
		return Result{NumericScore: 0, Color: ColorRed}
	}
	switch p {
	case PolicyWorst:
		worst := scores[0].Score
		for _, s := range scores[1:] {
			if s.Score < worst {
				worst = s.Score
			}
		}
		return Result{NumericScore: worst, Color: Classify(worst, t)}
	case PolicyMajority:
		return majorityColor(scores, t)
	default:
		avg := weightedAverage(scores)
		return Result{NumericScore: avg, Color: Classify(avg, t)}
	}
}

// majorityColor picks the color held by the most elements. Ties fall back
// to the color of the weighted-average score, which resolves every tie
// deterministically. The numeric score is always the weighted average.
func majorityColor(scores []WeightedScore, t Thresholds) Result {
	counts := map[Color]int{}
	for _, s := range scores {
		counts[Classify(s.Score, t)]++
	}
	avg := weightedAverage(scores)

	best := counts[ColorGreen]
	if counts[ColorYellow] > best {
		best = counts[ColorYellow]
	}
	if counts[ColorRed] > best {
		best = counts[ColorRed]
	}
	leaders := 0
	var lead Color
	for _, c := range []Color{ColorGreen, ColorYellow, ColorRed} {
		if counts[c] == best {
			leaders++
			lead = c
		}
	}
	if leaders > 1 {
		lead = Classify(avg, t)
	}
	return Result{NumericScore: avg, Color: lead}
}

func weightedAverage(scores []WeightedScore) float64 {
	var sum, weightSum float64
	for _, s := range scores {
		sum += s.Score * s.Weight
		weightSum += s.Weight
	}
	if weightSum == 0 {
		return 0
	}
	return sum / weightSum
}
