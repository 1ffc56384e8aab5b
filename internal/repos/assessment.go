package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clearboard/clearboard-backend/internal/logger"
	"github.com/clearboard/clearboard-backend/internal/types"
)

type AssessmentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.Assessment) (*types.Assessment, error)
	GetByID(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) (*types.Assessment, error)
	ListByTeacher(ctx context.Context, tx *gorm.DB, userID, teacherID uuid.UUID, from, to *time.Time) ([]*types.Assessment, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, from, to *time.Time) ([]*types.Assessment, error)
}

type assessmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAssessmentRepo(db *gorm.DB, baseLog *logger.Logger) AssessmentRepo {
	return &assessmentRepo{db: db, log: baseLog.With("repo", "AssessmentRepo")}
}

func (r *assessmentRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func dateWindow(q *gorm.DB, from, to *time.Time) *gorm.DB {
	if from != nil {
		q = q.Where("analyzed_at >= ?", *from)
	}
	if to != nil {
		q = q.Where("analyzed_at <= ?", *to)
	}
	return q
}

func (r *assessmentRepo) Create(ctx context.Context, tx *gorm.DB, row *types.Assessment) (*types.Assessment, error) {
	if err := r.conn(tx).WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *assessmentRepo) GetByID(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) (*types.Assessment, error) {
	var row types.Assessment
	err := r.conn(tx).WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *assessmentRepo) ListByTeacher(ctx context.Context, tx *gorm.DB, userID, teacherID uuid.UUID, from, to *time.Time) ([]*types.Assessment, error) {
	var rows []*types.Assessment
	q := r.conn(tx).WithContext(ctx).
		Where("user_id = ? AND teacher_id = ?", userID, teacherID)
	err := dateWindow(q, from, to).Order("analyzed_at asc").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *assessmentRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, from, to *time.Time) ([]*types.Assessment, error) {
	var rows []*types.Assessment
	q := r.conn(tx).WithContext(ctx).Where("user_id = ?", userID)
	err := dateWindow(q, from, to).Order("analyzed_at asc").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
