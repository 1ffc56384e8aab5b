package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/clearboard/clearboard-backend/internal/framework"
	"github.com/clearboard/clearboard-backend/internal/logger"
	"github.com/clearboard/clearboard-backend/internal/modules/scoring"
	"github.com/clearboard/clearboard-backend/internal/platform/apierr"
	"github.com/clearboard/clearboard-backend/internal/repos"
	"github.com/clearboard/clearboard-backend/internal/types"
)

type ElementScoreInput struct {
	ElementID    string   `json:"element_id"`
	Score        float64  `json:"score"`
	Weight       float64  `json:"weight"`
	Observations []string `json:"observations"`
	Confidence   *float64 `json:"confidence"`
}

type AssessmentInput struct {
	TeacherID     uuid.UUID           `json:"teacher_id"`
	FrameworkType string              `json:"framework_type"`
	ElementScores []ElementScoreInput `json:"element_scores"`
	AnalyzedAt    *time.Time          `json:"analyzed_at"`
}

type ObservationInput struct {
	TeacherID            uuid.UUID  `json:"teacher_id"`
	AssessmentID         *uuid.UUID `json:"assessment_id"`
	ElementID            *string    `json:"element_id"`
	AdminComment         string     `json:"admin_comment"`
	TeacherResponse      string     `json:"teacher_response"`
	ImplementationStatus string     `json:"implementation_status"`
}

// ElementInsight is one element's position averaged across the insight
// window.
type ElementInsight struct {
	ElementID    string  `json:"element_id"`
	ElementName  string  `json:"element_name"`
	AverageScore float64 `json:"average_score"`
	Level        string  `json:"level"`
}

type SummaryInsightsView struct {
	TeacherID         uuid.UUID        `json:"teacher_id"`
	OverallTrendScore *float64         `json:"overall_trend_score"`
	Summary           string           `json:"summary"`
	Recommendations   []string         `json:"recommendations"`
	ElementAverages   []ElementInsight `json:"element_averages"`
	AssessmentCount   int              `json:"assessment_count"`
}

// insightsWindow caps how many recent assessments feed the summary
// insights.
const insightsWindow = 50

type AssessmentService interface {
	CreateAssessment(ctx context.Context, userID uuid.UUID, in AssessmentInput) (*types.Assessment, error)
	GetAssessment(ctx context.Context, userID, id uuid.UUID) (*types.Assessment, error)
	ListAssessments(ctx context.Context, userID, teacherID uuid.UUID, from, to *time.Time) ([]*types.Assessment, error)
	SummaryInsights(ctx context.Context, userID, teacherID uuid.UUID) (*SummaryInsightsView, error)
	CreateObservation(ctx context.Context, userID uuid.UUID, in ObservationInput) (*types.Observation, error)
	ListObservations(ctx context.Context, userID, teacherID uuid.UUID) ([]*types.Observation, error)
	UpdateObservation(ctx context.Context, userID, id uuid.UUID, in ObservationInput) (*types.Observation, error)
}

type assessmentService struct {
	db              *gorm.DB
	log             *logger.Logger
	cfg             EngineConfig
	teacherRepo     repos.TeacherRepo
	assessmentRepo  repos.AssessmentRepo
	observationRepo repos.ObservationRepo
	cache           CacheService
}

func NewAssessmentService(
	db *gorm.DB,
	log *logger.Logger,
	cfg EngineConfig,
	teacherRepo repos.TeacherRepo,
	assessmentRepo repos.AssessmentRepo,
	observationRepo repos.ObservationRepo,
	cache CacheService,
) AssessmentService {
	return &assessmentService{
		db:              db,
		log:             log.With("service", "AssessmentService"),
		cfg:             cfg,
		teacherRepo:     teacherRepo,
		assessmentRepo:  assessmentRepo,
		observationRepo: observationRepo,
		cache:           cache,
	}
}

func (s *assessmentService) CreateAssessment(ctx context.Context, userID uuid.UUID, in AssessmentInput) (*types.Assessment, error) {
	if len(in.ElementScores) == 0 {
		return nil, apierr.BadRequest("empty_assessment", "at least one element score is required")
	}
	fw, err := framework.ByType(in.FrameworkType)
	if err != nil {
		return nil, apierr.BadRequest("unknown_framework", "%w", err)
	}
	if _, err := s.teacherRepo.GetByID(ctx, nil, userID, in.TeacherID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("teacher_not_found", "teacher not found")
		}
		return nil, err
	}

	records := make([]types.ElementScoreRecord, 0, len(in.ElementScores))
	weighted := make([]scoring.WeightedScore, 0, len(in.ElementScores))
	for _, es := range in.ElementScores {
		if es.Score < 0 || es.Score > 100 {
			return nil, apierr.BadRequest("invalid_score",
				"element %q score %.1f is outside [0,100]", es.ElementID, es.Score)
		}
		weight := es.Weight
		if weight <= 0 {
			weight = 1
		}
		records = append(records, types.ElementScoreRecord{
			ElementID:    es.ElementID,
			ElementName:  fw.ElementName(es.ElementID),
			Score:        es.Score,
			Level:        string(scoring.Classify(es.Score, s.cfg.Thresholds)),
			Observations: es.Observations,
			Confidence:   es.Confidence,
		})
		weighted = append(weighted, scoring.WeightedScore{Score: es.Score, Weight: weight})
	}
	overall := scoring.ComputeColumnScore(weighted, s.cfg.Policy, s.cfg.Thresholds)

	rawScores, err := json.Marshal(records)
	if err != nil {
		return nil, err
	}
	rawRecs, err := json.Marshal(s.recommendationsFor(records))
	if err != nil {
		return nil, err
	}
	analyzedAt := time.Now().UTC()
	if in.AnalyzedAt != nil {
		analyzedAt = in.AnalyzedAt.UTC()
	}
	row := &types.Assessment{
		ID:              uuid.New(),
		UserID:          userID,
		TeacherID:       in.TeacherID,
		FrameworkType:   fw.Type,
		ElementScores:   datatypes.JSON(rawScores),
		OverallScore:    overall.NumericScore,
		Summary:         s.summaryFor(records, overall),
		Recommendations: datatypes.JSON(rawRecs),
		AnalyzedAt:      analyzedAt,
	}
	created, err := s.assessmentRepo.Create(ctx, nil, row)
	if err != nil {
		return nil, fmt.Errorf("failed to create assessment: %w", err)
	}
	s.cache.Delete(ctx, rosterCacheKey(userID), dashboardCacheKey(userID, in.TeacherID))
	return created, nil
}

func (s *assessmentService) GetAssessment(ctx context.Context, userID, id uuid.UUID) (*types.Assessment, error) {
	row, err := s.assessmentRepo.GetByID(ctx, nil, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("assessment_not_found", "assessment not found")
		}
		return nil, err
	}
	return row, nil
}

func (s *assessmentService) ListAssessments(ctx context.Context, userID, teacherID uuid.UUID, from, to *time.Time) ([]*types.Assessment, error) {
	return s.assessmentRepo.ListByTeacher(ctx, nil, userID, teacherID, from, to)
}

// SummaryInsights condenses the teacher's recent assessments into
// per-element averages plus the same narrative text a single assessment
// gets.
func (s *assessmentService) SummaryInsights(ctx context.Context, userID, teacherID uuid.UUID) (*SummaryInsightsView, error) {
	if _, err := s.teacherRepo.GetByID(ctx, nil, userID, teacherID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("teacher_not_found", "teacher not found")
		}
		return nil, err
	}
	assessments, err := s.assessmentRepo.ListByTeacher(ctx, nil, userID, teacherID, nil, nil)
	if err != nil {
		return nil, err
	}
	if len(assessments) > insightsWindow {
		assessments = assessments[len(assessments)-insightsWindow:]
	}
	return s.insightsFrom(teacherID, assessments), nil
}

// insightsFrom folds the assessment window into the view. The overall
// trend score is the mean over every individual element score in the
// window, not the mean of per-element averages.
func (s *assessmentService) insightsFrom(teacherID uuid.UUID, assessments []*types.Assessment) *SummaryInsightsView {
	view := &SummaryInsightsView{
		TeacherID:       teacherID,
		Recommendations: []string{},
		ElementAverages: []ElementInsight{},
		AssessmentCount: len(assessments),
	}
	if len(assessments) == 0 {
		return view
	}

	var sum float64
	var n int
	history := elementHistory(assessments)
	for _, run := range history {
		for _, score := range run.scores {
			sum += score
			n++
		}
	}
	if n == 0 {
		return view
	}
	overallMean := math.Round(sum/float64(n)*100) / 100
	view.OverallTrendScore = &overallMean

	ids := make([]string, 0, len(history))
	for id := range history {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	records := make([]types.ElementScoreRecord, 0, len(ids))
	for _, id := range ids {
		run := history[id]
		avg := meanOf(run.scores)
		level := string(scoring.Classify(avg, s.cfg.Thresholds))
		records = append(records, types.ElementScoreRecord{
			ElementID:   id,
			ElementName: run.name,
			Score:       avg,
			Level:       level,
		})
		view.ElementAverages = append(view.ElementAverages, ElementInsight{
			ElementID:    id,
			ElementName:  run.name,
			AverageScore: math.Round(avg*100) / 100,
			Level:        level,
		})
	}

	overall := scoring.Result{
		NumericScore: overallMean,
		Color:        scoring.Classify(overallMean, s.cfg.Thresholds),
	}
	view.Summary = s.summaryFor(records, overall)
	view.Recommendations = s.recommendationsFor(records)
	return view
}

func (s *assessmentService) CreateObservation(ctx context.Context, userID uuid.UUID, in ObservationInput) (*types.Observation, error) {
	if _, err := s.teacherRepo.GetByID(ctx, nil, userID, in.TeacherID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("teacher_not_found", "teacher not found")
		}
		return nil, err
	}
	row := &types.Observation{
		ID:                   uuid.New(),
		UserID:               userID,
		TeacherID:            in.TeacherID,
		AssessmentID:         in.AssessmentID,
		ElementID:            in.ElementID,
		AdminComment:         in.AdminComment,
		TeacherResponse:      in.TeacherResponse,
		ImplementationStatus: in.ImplementationStatus,
	}
	return s.observationRepo.Create(ctx, nil, row)
}

func (s *assessmentService) ListObservations(ctx context.Context, userID, teacherID uuid.UUID) ([]*types.Observation, error) {
	return s.observationRepo.ListByTeacher(ctx, nil, userID, teacherID)
}

func (s *assessmentService) UpdateObservation(ctx context.Context, userID, id uuid.UUID, in ObservationInput) (*types.Observation, error) {
	row, err := s.observationRepo.GetByID(ctx, nil, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("observation_not_found", "observation not found")
		}
		return nil, err
	}
	if in.AdminComment != "" {
		row.AdminComment = in.AdminComment
	}
	if in.TeacherResponse != "" {
		row.TeacherResponse = in.TeacherResponse
	}
	if in.ImplementationStatus != "" {
		row.ImplementationStatus = in.ImplementationStatus
	}
	if err := s.observationRepo.Update(ctx, nil, row); err != nil {
		return nil, fmt.Errorf("failed to update observation: %w", err)
	}
	return row, nil
}

// summaryFor writes the one-paragraph assessment summary: overall band,
// top strengths at or above the green cutoff, growth areas below the
// yellow cutoff.
func (s *assessmentService) summaryFor(records []types.ElementScoreRecord, overall scoring.Result) string {
	var strengths, growth []string
	for _, r := range records {
		if r.Score >= s.cfg.Thresholds.GreenMin {
			strengths = append(strengths, r.ElementName)
		} else if r.Score < s.cfg.Thresholds.YellowMin {
			growth = append(growth, r.ElementName)
		}
	}
	parts := []string{fmt.Sprintf("Overall performance: %s (score %.1f/100).",
		titleCase(string(overall.Color)), math.Round(overall.NumericScore*10)/10)}
	if len(strengths) > 0 {
		parts = append(parts, "Key strengths include: "+strings.Join(capStrings(strengths, 3), ", ")+".")
	}
	if len(growth) > 0 {
		parts = append(parts, "Areas for professional growth: "+strings.Join(capStrings(growth, 3), ", ")+".")
	}
	return strings.Join(parts, " ")
}

// recommendationsFor turns the lowest-scoring elements into next-step
// text, worst first, capped at three.
func (s *assessmentService) recommendationsFor(records []types.ElementScoreRecord) []string {
	var low []types.ElementScoreRecord
	for _, r := range records {
		if r.Score < s.cfg.Thresholds.GreenMin {
			low = append(low, r)
		}
	}
	sort.SliceStable(low, func(i, j int) bool { return low[i].Score < low[j].Score })
	if len(low) > 3 {
		low = low[:3]
	}

	var out []string
	for _, r := range low {
		if r.Score < s.cfg.Thresholds.YellowMin {
			out = append(out, fmt.Sprintf("Priority: Focus on improving %s. Consider mentorship or targeted professional development.", r.ElementName))
		} else {
			out = append(out, fmt.Sprintf("Continue developing skills in %s. Review best practices and observe peer teachers.", r.ElementName))
		}
	}
	if len(out) == 0 {
		out = append(out, "Excellent performance across all evaluated areas. Consider leadership or mentoring opportunities.")
	}
	return out
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func capStrings(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
