package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clearboard/clearboard-backend/internal/logger"
	"github.com/clearboard/clearboard-backend/internal/modules/feedback"
	"github.com/clearboard/clearboard-backend/internal/platform/apierr"
	"github.com/clearboard/clearboard-backend/internal/repos"
	"github.com/clearboard/clearboard-backend/internal/types"
)

type CorrectionInput struct {
	TeacherID       uuid.UUID  `json:"teacher_id"`
	AssessmentID    *uuid.UUID `json:"assessment_id"`
	ElementID       string     `json:"element_id"`
	OriginalAIScore float64    `json:"original_ai_score"`
	CorrectedScore  float64    `json:"corrected_score"`
	ExpertiseWeight float64    `json:"expertise_weight"`
}

type FeedbackService interface {
	SubmitCorrection(ctx context.Context, userID uuid.UUID, in CorrectionInput) (*types.ScoreCorrection, error)
	ListCorrections(ctx context.Context, userID, teacherID uuid.UUID) ([]*types.ScoreCorrection, error)
	LearningSummary(ctx context.Context, userID uuid.UUID) ([]feedback.ElementSummary, error)
	ElementSummary(ctx context.Context, userID uuid.UUID, elementID string) (feedback.ElementSummary, error)
}

type feedbackService struct {
	db             *gorm.DB
	log            *logger.Logger
	teacherRepo    repos.TeacherRepo
	correctionRepo repos.CorrectionRepo
}

func NewFeedbackService(
	db *gorm.DB,
	log *logger.Logger,
	teacherRepo repos.TeacherRepo,
	correctionRepo repos.CorrectionRepo,
) FeedbackService {
	return &feedbackService{
		db:             db,
		log:            log.With("service", "FeedbackService"),
		teacherRepo:    teacherRepo,
		correctionRepo: correctionRepo,
	}
}

func (s *feedbackService) SubmitCorrection(ctx context.Context, userID uuid.UUID, in CorrectionInput) (*types.ScoreCorrection, error) {
	if in.ElementID == "" {
		return nil, apierr.BadRequest("invalid_correction", "an element id is required")
	}
	if in.OriginalAIScore < 0 || in.OriginalAIScore > 100 || in.CorrectedScore < 0 || in.CorrectedScore > 100 {
		return nil, apierr.BadRequest("invalid_correction", "scores must be within [0,100]")
	}
	if _, err := s.teacherRepo.GetByID(ctx, nil, userID, in.TeacherID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("teacher_not_found", "teacher not found")
		}
		return nil, err
	}
	weight := in.ExpertiseWeight
	if weight <= 0 {
		weight = 1
	}
	row := &types.ScoreCorrection{
		ID:              uuid.New(),
		UserID:          userID,
		TeacherID:       in.TeacherID,
		AssessmentID:    in.AssessmentID,
		ElementID:       in.ElementID,
		OriginalAIScore: in.OriginalAIScore,
		CorrectedScore:  in.CorrectedScore,
		ExpertiseWeight: weight,
	}
	created, err := s.correctionRepo.Create(ctx, nil, row)
	if err != nil {
		return nil, fmt.Errorf("failed to record correction: %w", err)
	}
	return created, nil
}

func (s *feedbackService) ListCorrections(ctx context.Context, userID, teacherID uuid.UUID) ([]*types.ScoreCorrection, error) {
	return s.correctionRepo.ListByTeacher(ctx, nil, userID, teacherID)
}

// LearningSummary aggregates the user's full correction history per
// element: bias direction, delta spread and the confidence adjustment
// applied to future automated scores.
func (s *feedbackService) LearningSummary(ctx context.Context, userID uuid.UUID) ([]feedback.ElementSummary, error) {
	rows, err := s.correctionRepo.ListByUser(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	return feedback.Summarize(correctionsToLog(rows)), nil
}

func (s *feedbackService) ElementSummary(ctx context.Context, userID uuid.UUID, elementID string) (feedback.ElementSummary, error) {
	rows, err := s.correctionRepo.ListByElement(ctx, nil, userID, elementID)
	if err != nil {
		return feedback.ElementSummary{}, err
	}
	return feedback.SummarizeElement(elementID, correctionsToLog(rows)), nil
}

func correctionsToLog(rows []*types.ScoreCorrection) []feedback.Correction {
	out := make([]feedback.Correction, 0, len(rows))
	for _, r := range rows {
		out = append(out, feedback.Correction{
			ElementID:       r.ElementID,
			OriginalAIScore: r.OriginalAIScore,
			CorrectedScore:  r.CorrectedScore,
			ExpertiseWeight: r.ExpertiseWeight,
		})
	}
	return out
}
