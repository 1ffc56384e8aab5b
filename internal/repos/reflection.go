package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/clearboard/clearboard-backend/internal/logger"
	"github.com/clearboard/clearboard-backend/internal/types"
)

type ReflectionRepo interface {
	GetByTeacher(ctx context.Context, tx *gorm.DB, userID, teacherID uuid.UUID) (*types.SummaryReflection, error)
	Upsert(ctx context.Context, tx *gorm.DB, row *types.SummaryReflection) error
}

type reflectionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewReflectionRepo(db *gorm.DB, baseLog *logger.Logger) ReflectionRepo {
	return &reflectionRepo{db: db, log: baseLog.With("repo", "ReflectionRepo")}
}

func (r *reflectionRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *reflectionRepo) GetByTeacher(ctx context.Context, tx *gorm.DB, userID, teacherID uuid.UUID) (*types.SummaryReflection, error) {
	var row types.SummaryReflection
	err := r.conn(tx).WithContext(ctx).
		Where("user_id = ? AND teacher_id = ?", userID, teacherID).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *reflectionRepo) Upsert(ctx context.Context, tx *gorm.DB, row *types.SummaryReflection) error {
	return r.conn(tx).WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "teacher_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"self_reflection", "actions_taken", "updated_at"}),
		}).
		Create(row).Error
}
