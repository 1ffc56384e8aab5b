package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clearboard/clearboard-backend/internal/logger"
	"github.com/clearboard/clearboard-backend/internal/modules/advisory"
	"github.com/clearboard/clearboard-backend/internal/modules/feedback"
	"github.com/clearboard/clearboard-backend/internal/modules/trend"
	"github.com/clearboard/clearboard-backend/internal/platform/apierr"
	"github.com/clearboard/clearboard-backend/internal/repos"
	"github.com/clearboard/clearboard-backend/internal/types"
)

// suggestionBodies maps each detected pattern to the coaching text shown
// to the administrator.
var suggestionBodies = map[advisory.Pattern]string{
	advisory.PatternDecliningTrend:   "Scores have been declining. Schedule a classroom observation to understand what changed.",
	advisory.PatternConsistentLow:    "Performance has stayed below expectations for several periods. Plan a targeted intervention with concrete goals.",
	advisory.PatternImprovementStall: "Earlier gains have plateaued. A coaching conversation could help identify the next growth step.",
	advisory.PatternHighPerformer:    "Consistently strong performance. Consider recognition, or a mentoring role for peers.",
	advisory.PatternVolatileScores:   "Scores swing widely between periods. Coaching on consistent routines may help stabilize outcomes.",
	advisory.PatternNewTeacher:       "Recently hired. Establish a regular observation cadence during the onboarding window.",
}

type AdvisoryService interface {
	GenerateSuggestions(ctx context.Context, userID, teacherID uuid.UUID) ([]*types.Suggestion, error)
	ListSuggestions(ctx context.Context, userID, teacherID uuid.UUID) ([]*types.Suggestion, error)
	UpdateSuggestionStatus(ctx context.Context, userID, id uuid.UUID, status advisory.Status) (*types.Suggestion, error)
}

type advisoryService struct {
	db             *gorm.DB
	log            *logger.Logger
	cfg            EngineConfig
	teacherRepo    repos.TeacherRepo
	trendPointRepo repos.TrendPointRepo
	suggestionRepo repos.SuggestionRepo
	correctionRepo repos.CorrectionRepo
}

func NewAdvisoryService(
	db *gorm.DB,
	log *logger.Logger,
	cfg EngineConfig,
	teacherRepo repos.TeacherRepo,
	trendPointRepo repos.TrendPointRepo,
	suggestionRepo repos.SuggestionRepo,
	correctionRepo repos.CorrectionRepo,
) AdvisoryService {
	return &advisoryService{
		db:             db,
		log:            log.With("service", "AdvisoryService"),
		cfg:            cfg,
		teacherRepo:    teacherRepo,
		trendPointRepo: trendPointRepo,
		suggestionRepo: suggestionRepo,
		correctionRepo: correctionRepo,
	}
}

// GenerateSuggestions detects patterns over the stored monthly trend
// series and materializes one pending suggestion per new pattern.
// Patterns that already have an open suggestion are skipped.
func (s *advisoryService) GenerateSuggestions(ctx context.Context, userID, teacherID uuid.UUID) ([]*types.Suggestion, error) {
	teacher, err := s.teacherRepo.GetByID(ctx, nil, userID, teacherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("teacher_not_found", "teacher not found")
		}
		return nil, err
	}
	points, err := s.trendPointRepo.ListByTeacher(ctx, nil, userID, teacherID, string(trend.PeriodMonth))
	if err != nil {
		return nil, err
	}
	stats := statsFromPoints(points, trend.PeriodMonth)

	now := time.Now().UTC()
	patterns := advisory.DetectPatterns(advisory.DetectInput{
		Stats:      stats,
		TenureDays: teacher.TenureDays(now),
	}, s.cfg.Thresholds)
	if len(patterns) == 0 {
		return []*types.Suggestion{}, nil
	}

	open, err := s.suggestionRepo.ListOpenByTeacher(ctx, nil, userID, teacherID)
	if err != nil {
		return nil, err
	}
	openPatterns := map[string]bool{}
	for _, sg := range open {
		openPatterns[sg.PatternDetected] = true
	}

	adjustment, err := s.confidenceAdjustment(ctx, userID, teacherID)
	if err != nil {
		return nil, err
	}

	var rows []*types.Suggestion
	for _, p := range patterns {
		if openPatterns[string(p)] {
			continue
		}
		sugType, priority, err := advisory.TemplateFor(p)
		if err != nil {
			s.log.Warn("Unknown pattern, skipping", "pattern", p, "error", err)
			continue
		}
		confidence := advisory.ConfidenceScore(confidenceInputFor(stats, now)) * adjustment
		rows = append(rows, &types.Suggestion{
			ID:              uuid.New(),
			UserID:          userID,
			TeacherID:       teacherID,
			PatternDetected: string(p),
			SuggestionType:  string(sugType),
			Priority:        string(priority),
			Body:            suggestionBodies[p],
			ConfidenceScore: confidence,
			Status:          string(advisory.StatusPending),
			ExpiresAt:       advisory.ExpiresAt(now, s.cfg.ExpirationDays),
		})
	}
	if len(rows) == 0 {
		return []*types.Suggestion{}, nil
	}
	return s.suggestionRepo.CreateMany(ctx, nil, rows)
}

// ListSuggestions returns the teacher's suggestions, expiring overdue
// pending and accepted ones on the way out.
func (s *advisoryService) ListSuggestions(ctx context.Context, userID, teacherID uuid.UUID) ([]*types.Suggestion, error) {
	rows, err := s.suggestionRepo.ListByTeacher(ctx, nil, userID, teacherID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	for _, row := range rows {
		status := advisory.Status(row.Status)
		if (status != advisory.StatusPending && status != advisory.StatusAccepted) || now.Before(row.ExpiresAt) {
			continue
		}
		if err := advisory.Transition(status, advisory.StatusExpired); err != nil {
			continue
		}
		row.Status = string(advisory.StatusExpired)
		row.ResolvedAt = &now
		if err := s.suggestionRepo.Update(ctx, nil, row); err != nil {
			return nil, fmt.Errorf("failed to expire suggestion: %w", err)
		}
	}
	return rows, nil
}

func (s *advisoryService) UpdateSuggestionStatus(ctx context.Context, userID, id uuid.UUID, status advisory.Status) (*types.Suggestion, error) {
	row, err := s.suggestionRepo.GetByID(ctx, nil, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("suggestion_not_found", "suggestion not found")
		}
		return nil, err
	}
	if err := advisory.Transition(advisory.Status(row.Status), status); err != nil {
		return nil, apierr.Conflict("invalid_status_transition", "%w", err)
	}
	now := time.Now().UTC()
	row.Status = string(status)
	switch status {
	case advisory.StatusRejected, advisory.StatusCompleted, advisory.StatusExpired:
		row.ResolvedAt = &now
	}
	if err := s.suggestionRepo.Update(ctx, nil, row); err != nil {
		return nil, fmt.Errorf("failed to update suggestion: %w", err)
	}
	return row, nil
}

// confidenceAdjustment shrinks suggestion confidence by the teacher's
// correction history, closing the learning loop.
func (s *advisoryService) confidenceAdjustment(ctx context.Context, userID, teacherID uuid.UUID) (float64, error) {
	corrections, err := s.correctionRepo.ListByTeacher(ctx, nil, userID, teacherID)
	if err != nil {
		return 0, err
	}
	if len(corrections) == 0 {
		return 1.0, nil
	}
	var sum float64
	for _, c := range corrections {
		delta := c.CorrectedScore - c.OriginalAIScore
		if delta < 0 {
			delta = -delta
		}
		sum += delta
	}
	return feedback.ConfidenceAdjustment(len(corrections), sum/float64(len(corrections))), nil
}

// confidenceInputFor derives the blend factors from the trend series:
// observation volume, direction consistency over the last three periods,
// coverage of recent periods with data, and recency of the latest one.
func confidenceInputFor(stats []trend.Stats, now time.Time) advisory.ConfidenceInput {
	in := advisory.ConfidenceInput{}
	for _, st := range stats {
		in.ObservationCount += st.ObservationCount
	}
	if len(stats) == 0 {
		return in
	}

	window := stats
	if len(window) > 3 {
		window = window[len(window)-3:]
	}
	same := 0
	last := window[len(window)-1].Direction
	for _, st := range window {
		if st.Direction == last {
			same++
		}
	}
	in.TrendConsistency = float64(same) / float64(len(window))

	covered := 0
	for _, st := range window {
		if st.ObservationCount > 0 {
			covered++
		}
	}
	in.ElementCoverage = float64(covered) / float64(len(window))

	age := now.Sub(stats[len(stats)-1].PeriodEnd)
	switch {
	case age <= 0:
		in.DataRecency = 1
	case age >= 90*24*time.Hour:
		in.DataRecency = 0
	default:
		in.DataRecency = 1 - age.Hours()/(90*24)
	}
	return in
}
