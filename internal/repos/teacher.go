package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clearboard/clearboard-backend/internal/logger"
	"github.com/clearboard/clearboard-backend/internal/types"
)

type TeacherRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.Teacher) (*types.Teacher, error)
	GetByID(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) (*types.Teacher, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Teacher, error)
	Update(ctx context.Context, tx *gorm.DB, row *types.Teacher) error
	SoftDelete(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) error
}

type teacherRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTeacherRepo(db *gorm.DB, baseLog *logger.Logger) TeacherRepo {
	return &teacherRepo{db: db, log: baseLog.With("repo", "TeacherRepo")}
}

func (r *teacherRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *teacherRepo) Create(ctx context.Context, tx *gorm.DB, row *types.Teacher) (*types.Teacher, error) {
	if err := r.conn(tx).WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *teacherRepo) GetByID(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) (*types.Teacher, error) {
	var row types.Teacher
	err := r.conn(tx).WithContext(ctx).
		Where("id = ? AND created_by = ?", id, userID).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *teacherRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Teacher, error) {
	var rows []*types.Teacher
	err := r.conn(tx).WithContext(ctx).
		Where("created_by = ?", userID).
		Order("name asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *teacherRepo) Update(ctx context.Context, tx *gorm.DB, row *types.Teacher) error {
	return r.conn(tx).WithContext(ctx).Save(row).Error
}

func (r *teacherRepo) SoftDelete(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) error {
	return r.conn(tx).WithContext(ctx).
		Where("id = ? AND created_by = ?", id, userID).
		Delete(&types.Teacher{}).Error
}
