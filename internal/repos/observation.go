package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clearboard/clearboard-backend/internal/logger"
	"github.com/clearboard/clearboard-backend/internal/types"
)

type ObservationRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.Observation) (*types.Observation, error)
	GetByID(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) (*types.Observation, error)
	ListByTeacher(ctx context.Context, tx *gorm.DB, userID, teacherID uuid.UUID) ([]*types.Observation, error)
	ListByAssessment(ctx context.Context, tx *gorm.DB, userID, assessmentID uuid.UUID) ([]*types.Observation, error)
	Update(ctx context.Context, tx *gorm.DB, row *types.Observation) error
}

type observationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewObservationRepo(db *gorm.DB, baseLog *logger.Logger) ObservationRepo {
	return &observationRepo{db: db, log: baseLog.With("repo", "ObservationRepo")}
}

func (r *observationRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *observationRepo) Create(ctx context.Context, tx *gorm.DB, row *types.Observation) (*types.Observation, error) {
	if err := r.conn(tx).WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *observationRepo) GetByID(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) (*types.Observation, error) {
	var row types.Observation
	err := r.conn(tx).WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *observationRepo) ListByTeacher(ctx context.Context, tx *gorm.DB, userID, teacherID uuid.UUID) ([]*types.Observation, error) {
	var rows []*types.Observation
	err := r.conn(tx).WithContext(ctx).
		Where("user_id = ? AND teacher_id = ?", userID, teacherID).
		Order("created_at desc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *observationRepo) ListByAssessment(ctx context.Context, tx *gorm.DB, userID, assessmentID uuid.UUID) ([]*types.Observation, error) {
	var rows []*types.Observation
	err := r.conn(tx).WithContext(ctx).
		Where("user_id = ? AND assessment_id = ?", userID, assessmentID).
		Order("created_at desc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *observationRepo) Update(ctx context.Context, tx *gorm.DB, row *types.Observation) error {
	return r.conn(tx).WithContext(ctx).Save(row).Error
}
