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

type TeacherInput struct {
	Name       string     `json:"name"`
	Subject    string     `json:"subject"`
	GradeLevel string     `json:"grade_level"`
	Department string     `json:"department"`
	HireDate   *time.Time `json:"hire_date"`
}

type ReflectionInput struct {
	SelfReflection string `json:"self_reflection"`
	ActionsTaken   string `json:"actions_taken"`
}

type TeacherService interface {
	CreateTeacher(ctx context.Context, userID uuid.UUID, in TeacherInput) (*types.Teacher, error)
	GetTeacher(ctx context.Context, userID, id uuid.UUID) (*types.Teacher, error)
	ListTeachers(ctx context.Context, userID uuid.UUID) ([]*types.Teacher, error)
	UpdateTeacher(ctx context.Context, userID, id uuid.UUID, in TeacherInput) (*types.Teacher, error)
	DeleteTeacher(ctx context.Context, userID, id uuid.UUID) error
	GetReflection(ctx context.Context, userID, teacherID uuid.UUID) (*types.SummaryReflection, error)
	SaveReflection(ctx context.Context, userID, teacherID uuid.UUID, in ReflectionInput) (*types.SummaryReflection, error)
}

type teacherService struct {
	db             *gorm.DB
	log            *logger.Logger
	teacherRepo    repos.TeacherRepo
	reflectionRepo repos.ReflectionRepo
	cache          CacheService
}

func NewTeacherService(
	db *gorm.DB,
	log *logger.Logger,
	teacherRepo repos.TeacherRepo,
	reflectionRepo repos.ReflectionRepo,
	cache CacheService,
) TeacherService {
	return &teacherService{
		db:             db,
		log:            log.With("service", "TeacherService"),
		teacherRepo:    teacherRepo,
		reflectionRepo: reflectionRepo,
		cache:          cache,
	}
}

func (s *teacherService) CreateTeacher(ctx context.Context, userID uuid.UUID, in TeacherInput) (*types.Teacher, error) {
	if err := validateTeacherInput(in); err != nil {
		return nil, err
	}
	row := &types.Teacher{
		ID:         uuid.New(),
		CreatedBy:  userID,
		Name:       strings.TrimSpace(in.Name),
		Subject:    strings.TrimSpace(in.Subject),
		GradeLevel: strings.TrimSpace(in.GradeLevel),
		Department: strings.TrimSpace(in.Department),
		HireDate:   in.HireDate,
	}
	created, err := s.teacherRepo.Create(ctx, nil, row)
	if err != nil {
		return nil, fmt.Errorf("failed to create teacher: %w", err)
	}
	s.cache.Delete(ctx, rosterCacheKey(userID))
	return created, nil
}

func (s *teacherService) GetTeacher(ctx context.Context, userID, id uuid.UUID) (*types.Teacher, error) {
	row, err := s.teacherRepo.GetByID(ctx, nil, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("teacher_not_found", "teacher not found")
		}
		return nil, err
	}
	return row, nil
}

func (s *teacherService) ListTeachers(ctx context.Context, userID uuid.UUID) ([]*types.Teacher, error) {
	return s.teacherRepo.ListByUser(ctx, nil, userID)
}

func (s *teacherService) UpdateTeacher(ctx context.Context, userID, id uuid.UUID, in TeacherInput) (*types.Teacher, error) {
	if err := validateTeacherInput(in); err != nil {
		return nil, err
	}
	row, err := s.GetTeacher(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	row.Name = strings.TrimSpace(in.Name)
	row.Subject = strings.TrimSpace(in.Subject)
	row.GradeLevel = strings.TrimSpace(in.GradeLevel)
	row.Department = strings.TrimSpace(in.Department)
	row.HireDate = in.HireDate
	if err := s.teacherRepo.Update(ctx, nil, row); err != nil {
		return nil, fmt.Errorf("failed to update teacher: %w", err)
	}
	s.cache.Delete(ctx, rosterCacheKey(userID), dashboardCacheKey(userID, id))
	return row, nil
}

func (s *teacherService) DeleteTeacher(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.GetTeacher(ctx, userID, id); err != nil {
		return err
	}
	if err := s.teacherRepo.SoftDelete(ctx, nil, userID, id); err != nil {
		return fmt.Errorf("failed to delete teacher: %w", err)
	}
	s.cache.Delete(ctx, rosterCacheKey(userID), dashboardCacheKey(userID, id))
	return nil
}

func (s *teacherService) GetReflection(ctx context.Context, userID, teacherID uuid.UUID) (*types.SummaryReflection, error) {
	row, err := s.reflectionRepo.GetByTeacher(ctx, nil, userID, teacherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &types.SummaryReflection{UserID: userID, TeacherID: teacherID}, nil
		}
		return nil, err
	}
	return row, nil
}

func (s *teacherService) SaveReflection(ctx context.Context, userID, teacherID uuid.UUID, in ReflectionInput) (*types.SummaryReflection, error) {
	if _, err := s.GetTeacher(ctx, userID, teacherID); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	row := &types.SummaryReflection{
		ID:             uuid.New(),
		UserID:         userID,
		TeacherID:      teacherID,
		SelfReflection: in.SelfReflection,
		ActionsTaken:   in.ActionsTaken,
		UpdatedAt:      &now,
	}
	if err := s.reflectionRepo.Upsert(ctx, nil, row); err != nil {
		return nil, fmt.Errorf("failed to save reflection: %w", err)
	}
	return s.reflectionRepo.GetByTeacher(ctx, nil, userID, teacherID)
}

func validateTeacherInput(in TeacherInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return apierr.BadRequest("invalid_teacher", "a teacher name is required")
	}
	if strings.TrimSpace(in.Subject) == "" {
		return apierr.BadRequest("invalid_teacher", "a subject is required")
	}
	return nil
}

func rosterCacheKey(userID uuid.UUID) string {
	return "roster:" + userID.String()
}

func dashboardCacheKey(userID, teacherID uuid.UUID) string {
	return "dashboard:" + userID.String() + ":" + teacherID.String()
}
