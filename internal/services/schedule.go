package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clearboard/clearboard-backend/internal/logger"
	"github.com/clearboard/clearboard-backend/internal/platform/apierr"
	"github.com/clearboard/clearboard-backend/internal/repos"
	"github.com/clearboard/clearboard-backend/internal/types"
)

var scheduleStatuses = map[string]bool{
	types.ScheduleStatusPlanned:   true,
	types.ScheduleStatusRecording: true,
	types.ScheduleStatusCompleted: true,
	types.ScheduleStatusCancelled: true,
}

type ScheduleInput struct {
	TeacherID       uuid.UUID `json:"teacher_id"`
	Title           string    `json:"title"`
	ScheduledFor    time.Time `json:"scheduled_for"`
	DurationMinutes int       `json:"duration_minutes"`
	Notes           string    `json:"notes"`
}

type ScheduleService interface {
	CreateSchedule(ctx context.Context, userID uuid.UUID, in ScheduleInput) (*types.Schedule, error)
	ListSchedules(ctx context.Context, userID uuid.UUID, teacherID *uuid.UUID) ([]*types.Schedule, error)
	UpdateScheduleStatus(ctx context.Context, userID, id uuid.UUID, status string) (*types.Schedule, error)
}

type scheduleService struct {
	db           *gorm.DB
	log          *logger.Logger
	teacherRepo  repos.TeacherRepo
	scheduleRepo repos.ScheduleRepo
}

func NewScheduleService(
	db *gorm.DB,
	log *logger.Logger,
	teacherRepo repos.TeacherRepo,
	scheduleRepo repos.ScheduleRepo,
) ScheduleService {
	return &scheduleService{
		db:           db,
		log:          log.With("service", "ScheduleService"),
		teacherRepo:  teacherRepo,
		scheduleRepo: scheduleRepo,
	}
}

func (s *scheduleService) CreateSchedule(ctx context.Context, userID uuid.UUID, in ScheduleInput) (*types.Schedule, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, apierr.BadRequest("invalid_schedule", "a title is required")
	}
	if in.ScheduledFor.IsZero() {
		return nil, apierr.BadRequest("invalid_schedule", "a scheduled time is required")
	}
	if _, err := s.teacherRepo.GetByID(ctx, nil, userID, in.TeacherID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("teacher_not_found", "teacher not found")
		}
		return nil, err
	}
	duration := in.DurationMinutes
	if duration <= 0 {
		duration = 45
	}
	row := &types.Schedule{
		ID:              uuid.New(),
		UserID:          userID,
		TeacherID:       in.TeacherID,
		Title:           strings.TrimSpace(in.Title),
		ScheduledFor:    in.ScheduledFor.UTC(),
		DurationMinutes: duration,
		Status:          types.ScheduleStatusPlanned,
		Notes:           in.Notes,
	}
	return s.scheduleRepo.Create(ctx, nil, row)
}

func (s *scheduleService) ListSchedules(ctx context.Context, userID uuid.UUID, teacherID *uuid.UUID) ([]*types.Schedule, error) {
	if teacherID != nil {
		return s.scheduleRepo.ListByTeacher(ctx, nil, userID, *teacherID)
	}
	return s.scheduleRepo.ListByUser(ctx, nil, userID)
}

func (s *scheduleService) UpdateScheduleStatus(ctx context.Context, userID, id uuid.UUID, status string) (*types.Schedule, error) {
	if !scheduleStatuses[status] {
		return nil, apierr.BadRequest("invalid_schedule_status", "unknown schedule status %q", status)
	}
	row, err := s.scheduleRepo.GetByID(ctx, nil, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("schedule_not_found", "schedule not found")
		}
		return nil, err
	}
	if row.Status == types.ScheduleStatusCompleted || row.Status == types.ScheduleStatusCancelled {
		return nil, apierr.Conflict("schedule_finalized", "schedule is already %s", row.Status)
	}
	row.Status = status
	if err := s.scheduleRepo.Update(ctx, nil, row); err != nil {
		return nil, fmt.Errorf("failed to update schedule: %w", err)
	}
	return row, nil
}
