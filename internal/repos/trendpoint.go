package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clearboard/clearboard-backend/internal/logger"
	"github.com/clearboard/clearboard-backend/internal/types"
)

type TrendPointRepo interface {
	CreateMany(ctx context.Context, tx *gorm.DB, rows []*types.TrendPoint) ([]*types.TrendPoint, error)
	// ReplaceForTeacher swaps the stored series for one (teacher, period
	// type) pair: recomputation supersedes, it never mutates in place.
	ReplaceForTeacher(ctx context.Context, tx *gorm.DB, userID, teacherID uuid.UUID, periodType string, rows []*types.TrendPoint) error
	ListByTeacher(ctx context.Context, tx *gorm.DB, userID, teacherID uuid.UUID, periodType string) ([]*types.TrendPoint, error)
}

type trendPointRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTrendPointRepo(db *gorm.DB, baseLog *logger.Logger) TrendPointRepo {
	return &trendPointRepo{db: db, log: baseLog.With("repo", "TrendPointRepo")}
}

func (r *trendPointRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *trendPointRepo) CreateMany(ctx context.Context, tx *gorm.DB, rows []*types.TrendPoint) ([]*types.TrendPoint, error) {
	if len(rows) == 0 {
		return rows, nil
	}
	if err := r.conn(tx).WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *trendPointRepo) ReplaceForTeacher(ctx context.Context, tx *gorm.DB, userID, teacherID uuid.UUID, periodType string, rows []*types.TrendPoint) error {
	return r.conn(tx).WithContext(ctx).Transaction(func(inner *gorm.DB) error {
		err := inner.
			Where("user_id = ? AND teacher_id = ? AND period_type = ?", userID, teacherID, periodType).
			Delete(&types.TrendPoint{}).Error
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return inner.Create(&rows).Error
	})
}

func (r *trendPointRepo) ListByTeacher(ctx context.Context, tx *gorm.DB, userID, teacherID uuid.UUID, periodType string) ([]*types.TrendPoint, error) {
	var rows []*types.TrendPoint
	err := r.conn(tx).WithContext(ctx).
		Where("user_id = ? AND teacher_id = ? AND period_type = ?", userID, teacherID, periodType).
		Order("period_start asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
