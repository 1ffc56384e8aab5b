package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clearboard/clearboard-backend/internal/logger"
	"github.com/clearboard/clearboard-backend/internal/types"
)

type UserTokenRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.UserToken) (*types.UserToken, error)
	GetActiveByHash(ctx context.Context, tx *gorm.DB, hash string) (*types.UserToken, error)
	RevokeByHash(ctx context.Context, tx *gorm.DB, hash string) error
	RevokeAllForUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error
}

type userTokenRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserTokenRepo(db *gorm.DB, baseLog *logger.Logger) UserTokenRepo {
	return &userTokenRepo{db: db, log: baseLog.With("repo", "UserTokenRepo")}
}

func (r *userTokenRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *userTokenRepo) Create(ctx context.Context, tx *gorm.DB, row *types.UserToken) (*types.UserToken, error) {
	if err := r.conn(tx).WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *userTokenRepo) GetActiveByHash(ctx context.Context, tx *gorm.DB, hash string) (*types.UserToken, error) {
	var row types.UserToken
	err := r.conn(tx).WithContext(ctx).
		Where("token_hash = ? AND revoked = false AND expires_at > ?", hash, time.Now().UTC()).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *userTokenRepo) RevokeByHash(ctx context.Context, tx *gorm.DB, hash string) error {
	return r.conn(tx).WithContext(ctx).
		Model(&types.UserToken{}).
		Where("token_hash = ?", hash).
		Update("revoked", true).Error
}

func (r *userTokenRepo) RevokeAllForUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
	return r.conn(tx).WithContext(ctx).
		Model(&types.UserToken{}).
		Where("user_id = ?", userID).
		Update("revoked", true).Error
}
