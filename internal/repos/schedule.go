package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clearboard/clearboard-backend/internal/logger"
	"github.com/clearboard/clearboard-backend/internal/types"
)

type ScheduleRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.Schedule) (*types.Schedule, error)
	GetByID(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) (*types.Schedule, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Schedule, error)
	ListByTeacher(ctx context.Context, tx *gorm.DB, userID, teacherID uuid.UUID) ([]*types.Schedule, error)
	Update(ctx context.Context, tx *gorm.DB, row *types.Schedule) error
}

type scheduleRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewScheduleRepo(db *gorm.DB, baseLog *logger.Logger) ScheduleRepo {
	return &scheduleRepo{db: db, log: baseLog.With("repo", "ScheduleRepo")}
}

func (r *scheduleRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *scheduleRepo) Create(ctx context.Context, tx *gorm.DB, row *types.Schedule) (*types.Schedule, error) {
	if err := r.conn(tx).WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *scheduleRepo) GetByID(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) (*types.Schedule, error) {
	var row types.Schedule
	err := r.conn(tx).WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *scheduleRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Schedule, error) {
	var rows []*types.Schedule
	err := r.conn(tx).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("scheduled_for asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *scheduleRepo) ListByTeacher(ctx context.Context, tx *gorm.DB, userID, teacherID uuid.UUID) ([]*types.Schedule, error) {
	var rows []*types.Schedule
	err := r.conn(tx).WithContext(ctx).
		Where("user_id = ? AND teacher_id = ?", userID, teacherID).
		Order("scheduled_for asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *scheduleRepo) Update(ctx context.Context, tx *gorm.DB, row *types.Schedule) error {
	return r.conn(tx).WithContext(ctx).Save(row).Error
}
