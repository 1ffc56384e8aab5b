package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/clearboard/clearboard-backend/internal/logger"
	"github.com/clearboard/clearboard-backend/internal/types"
)

type FrameworkSelectionRepo interface {
	GetByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.FrameworkSelection, error)
	Upsert(ctx context.Context, tx *gorm.DB, row *types.FrameworkSelection) error
}

type frameworkSelectionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFrameworkSelectionRepo(db *gorm.DB, baseLog *logger.Logger) FrameworkSelectionRepo {
	return &frameworkSelectionRepo{db: db, log: baseLog.With("repo", "FrameworkSelectionRepo")}
}

func (r *frameworkSelectionRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *frameworkSelectionRepo) GetByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.FrameworkSelection, error) {
	var row types.FrameworkSelection
	err := r.conn(tx).WithContext(ctx).
		Where("user_id = ?", userID).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *frameworkSelectionRepo) Upsert(ctx context.Context, tx *gorm.DB, row *types.FrameworkSelection) error {
	return r.conn(tx).WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"framework_type", "selected_elements", "updated_at"}),
		}).
		Create(row).Error
}
