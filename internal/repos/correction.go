package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clearboard/clearboard-backend/internal/logger"
	"github.com/clearboard/clearboard-backend/internal/types"
)

type CorrectionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.ScoreCorrection) (*types.ScoreCorrection, error)
	ListByTeacher(ctx context.Context, tx *gorm.DB, userID, teacherID uuid.UUID) ([]*types.ScoreCorrection, error)
	ListByElement(ctx context.Context, tx *gorm.DB, userID uuid.UUID, elementID string) ([]*types.ScoreCorrection, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.ScoreCorrection, error)
}

type correctionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCorrectionRepo(db *gorm.DB, baseLog *logger.Logger) CorrectionRepo {
	return &correctionRepo{db: db, log: baseLog.With("repo", "CorrectionRepo")}
}

func (r *correctionRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *correctionRepo) Create(ctx context.Context, tx *gorm.DB, row *types.ScoreCorrection) (*types.ScoreCorrection, error) {
	if err := r.conn(tx).WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *correctionRepo) ListByTeacher(ctx context.Context, tx *gorm.DB, userID, teacherID uuid.UUID) ([]*types.ScoreCorrection, error) {
	var rows []*types.ScoreCorrection
	err := r.conn(tx).WithContext(ctx).
		Where("user_id = ? AND teacher_id = ?", userID, teacherID).
		Order("created_at asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *correctionRepo) ListByElement(ctx context.Context, tx *gorm.DB, userID uuid.UUID, elementID string) ([]*types.ScoreCorrection, error) {
	var rows []*types.ScoreCorrection
	err := r.conn(tx).WithContext(ctx).
		Where("user_id = ? AND element_id = ?", userID, elementID).
		Order("created_at asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *correctionRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.ScoreCorrection, error) {
	var rows []*types.ScoreCorrection
	err := r.conn(tx).WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
