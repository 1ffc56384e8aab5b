package services

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/clearboard/clearboard-backend/internal/logger"
	"github.com/clearboard/clearboard-backend/internal/modules/scoring"
	"github.com/clearboard/clearboard-backend/internal/types"
)

func newTestAssessmentService() *assessmentService {
	return &assessmentService{
		log: logger.NewNop(),
		cfg: DefaultEngineConfig(),
	}
}

func TestSummaryForMentionsStrengthsAndGrowth(t *testing.T) {
	s := newTestAssessmentService()
	records := []types.ElementScoreRecord{
		{ElementID: "1a", ElementName: "Planning", Score: 90},
		{ElementID: "2a", ElementName: "Environment", Score: 55},
		{ElementID: "3a", ElementName: "Instruction", Score: 70},
	}
	overall := scoring.Result{NumericScore: 71.7, Color: scoring.ColorYellow}
	summary := s.summaryFor(records, overall)

	if !strings.Contains(summary, "Yellow") {
		t.Fatalf("expected overall band in summary, got %q", summary)
	}
	if !strings.Contains(summary, "Planning") {
		t.Fatalf("expected strength named, got %q", summary)
	}
	if !strings.Contains(summary, "Environment") {
		t.Fatalf("expected growth area named, got %q", summary)
	}
	if strings.Contains(summary, "Instruction") {
		t.Fatalf("mid-band element should not be listed, got %q", summary)
	}
}

func TestSummaryForCapsListsAtThree(t *testing.T) {
	s := newTestAssessmentService()
	records := []types.ElementScoreRecord{
		{ElementName: "A", Score: 95},
		{ElementName: "B", Score: 94},
		{ElementName: "C", Score: 93},
		{ElementName: "D", Score: 92},
	}
	summary := s.summaryFor(records, scoring.Result{NumericScore: 93.5, Color: scoring.ColorGreen})
	if strings.Contains(summary, "D") {
		t.Fatalf("expected at most three strengths, got %q", summary)
	}
}

func TestRecommendationsPrioritizeLowestScores(t *testing.T) {
	s := newTestAssessmentService()
	records := []types.ElementScoreRecord{
		{ElementName: "Planning", Score: 45},
		{ElementName: "Environment", Score: 70},
		{ElementName: "Instruction", Score: 85},
	}
	recs := s.recommendationsFor(records)
	if len(recs) != 2 {
		t.Fatalf("expected 2 recommendations, got %v", recs)
	}
	if !strings.HasPrefix(recs[0], "Priority:") || !strings.Contains(recs[0], "Planning") {
		t.Fatalf("worst element should come first with priority text, got %q", recs[0])
	}
	if !strings.Contains(recs[1], "Environment") {
		t.Fatalf("expected yellow-band advice for Environment, got %q", recs[1])
	}
}

func insightAssessment(t *testing.T, records []types.ElementScoreRecord) *types.Assessment {
	t.Helper()
	raw, err := json.Marshal(records)
	if err != nil {
		t.Fatalf("marshal element scores: %v", err)
	}
	return &types.Assessment{ID: uuid.New(), ElementScores: datatypes.JSON(raw)}
}

func TestSummaryInsightsEmptyHistory(t *testing.T) {
	s := newTestAssessmentService()
	teacherID := uuid.New()
	view := s.insightsFrom(teacherID, nil)

	if view.TeacherID != teacherID || view.AssessmentCount != 0 {
		t.Fatalf("unexpected view header: %+v", view)
	}
	if view.OverallTrendScore != nil {
		t.Fatalf("no assessments should leave the trend score unset, got %v", *view.OverallTrendScore)
	}
	if view.Summary != "" || len(view.Recommendations) != 0 || len(view.ElementAverages) != 0 {
		t.Fatalf("empty history should produce an empty view, got %+v", view)
	}
}

func TestSummaryInsightsFlattensAllScores(t *testing.T) {
	s := newTestAssessmentService()
	teacherID := uuid.New()
	assessments := []*types.Assessment{
		insightAssessment(t, []types.ElementScoreRecord{
			{ElementID: "1a", ElementName: "Planning", Score: 80},
			{ElementID: "2a", ElementName: "Environment", Score: 40},
		}),
		insightAssessment(t, []types.ElementScoreRecord{
			{ElementID: "1a", ElementName: "Planning", Score: 60},
		}),
	}
	view := s.insightsFrom(teacherID, assessments)

	if view.AssessmentCount != 2 {
		t.Fatalf("expected 2 assessments counted, got %d", view.AssessmentCount)
	}
	// The overall trend averages every individual score (80, 40, 60),
	// not the two per-element averages.
	if view.OverallTrendScore == nil || *view.OverallTrendScore != 60 {
		t.Fatalf("expected overall trend 60, got %v", view.OverallTrendScore)
	}
	if len(view.ElementAverages) != 2 {
		t.Fatalf("expected 2 element averages, got %+v", view.ElementAverages)
	}
	planning, environment := view.ElementAverages[0], view.ElementAverages[1]
	if planning.ElementID != "1a" || planning.AverageScore != 70 || planning.Level != "yellow" {
		t.Fatalf("unexpected planning insight: %+v", planning)
	}
	if environment.ElementID != "2a" || environment.AverageScore != 40 || environment.Level != "red" {
		t.Fatalf("unexpected environment insight: %+v", environment)
	}
	if !strings.HasPrefix(view.Recommendations[0], "Priority:") || !strings.Contains(view.Recommendations[0], "Environment") {
		t.Fatalf("worst averaged element should lead the recommendations, got %v", view.Recommendations)
	}
	if !strings.Contains(view.Summary, "Environment") {
		t.Fatalf("growth area should be named in the summary, got %q", view.Summary)
	}
}

func TestRecommendationsAllStrong(t *testing.T) {
	s := newTestAssessmentService()
	records := []types.ElementScoreRecord{
		{ElementName: "Planning", Score: 88},
		{ElementName: "Instruction", Score: 92},
	}
	recs := s.recommendationsFor(records)
	if len(recs) != 1 || !strings.Contains(recs[0], "Excellent performance") {
		t.Fatalf("expected the all-strong recommendation, got %v", recs)
	}
}
