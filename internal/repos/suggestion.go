package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clearboard/clearboard-backend/internal/logger"
	"github.com/clearboard/clearboard-backend/internal/types"
)

type SuggestionRepo interface {
	CreateMany(ctx context.Context, tx *gorm.DB, rows []*types.Suggestion) ([]*types.Suggestion, error)
	GetByID(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) (*types.Suggestion, error)
	ListByTeacher(ctx context.Context, tx *gorm.DB, userID, teacherID uuid.UUID) ([]*types.Suggestion, error)
	ListOpenByTeacher(ctx context.Context, tx *gorm.DB, userID, teacherID uuid.UUID) ([]*types.Suggestion, error)
	Update(ctx context.Context, tx *gorm.DB, row *types.Suggestion) error
}

type suggestionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSuggestionRepo(db *gorm.DB, baseLog *logger.Logger) SuggestionRepo {
	return &suggestionRepo{db: db, log: baseLog.With("repo", "SuggestionRepo")}
}

func (r *suggestionRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *suggestionRepo) CreateMany(ctx context.Context, tx *gorm.DB, rows []*types.Suggestion) ([]*types.Suggestion, error) {
	if len(rows) == 0 {
		return rows, nil
	}
	if err := r.conn(tx).WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *suggestionRepo) GetByID(ctx context.Context, tx *gorm.DB, userID, id uuid.UUID) (*types.Suggestion, error) {
	var row types.Suggestion
	err := r.conn(tx).WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *suggestionRepo) ListByTeacher(ctx context.Context, tx *gorm.DB, userID, teacherID uuid.UUID) ([]*types.Suggestion, error) {
	var rows []*types.Suggestion
	err := r.conn(tx).WithContext(ctx).
		Where("user_id = ? AND teacher_id = ?", userID, teacherID).
		Order("created_at desc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *suggestionRepo) ListOpenByTeacher(ctx context.Context, tx *gorm.DB, userID, teacherID uuid.UUID) ([]*types.Suggestion, error) {
	var rows []*types.Suggestion
	err := r.conn(tx).WithContext(ctx).
		Where("user_id = ? AND teacher_id = ? AND status IN ?", userID, teacherID, []string{"pending", "accepted"}).
		Order("created_at desc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *suggestionRepo) Update(ctx context.Context, tx *gorm.DB, row *types.Suggestion) error {
	return r.conn(tx).WithContext(ctx).Save(row).Error
}
