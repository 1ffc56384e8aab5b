package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clearboard/clearboard-backend/internal/logger"
	"github.com/clearboard/clearboard-backend/internal/platform/apierr"
	"github.com/clearboard/clearboard-backend/internal/requestdata"
	"github.com/clearboard/clearboard-backend/internal/types"
)

type stubUserRepo struct {
	users map[uuid.UUID]*types.User
}

func (r *stubUserRepo) Create(ctx context.Context, tx *gorm.DB, user *types.User) (*types.User, error) {
	r.users[user.ID] = user
	return user, nil
}

func (r *stubUserRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.User, error) {
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, nil, email)
	return err == nil, nil
}

func newTestAuthService(users ...*types.User) *authService {
	repo := &stubUserRepo{users: map[uuid.UUID]*types.User{}}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return &authService{log: logger.NewNop(), userRepo: repo}
}

func TestCurrentUserResolvesIdentity(t *testing.T) {
	user := &types.User{ID: uuid.New(), Email: "principal@school.test", Name: "Principal"}
	s := newTestAuthService(user)
	ctx := requestdata.WithRequestData(context.Background(), &requestdata.RequestData{UserID: user.ID, Email: user.Email})

	got, err := s.CurrentUser(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != user.ID || got.Email != user.Email {
		t.Fatalf("expected the authenticated user, got %+v", got)
	}
}

func TestCurrentUserWithoutIdentity(t *testing.T) {
	s := newTestAuthService()
	_, err := s.CurrentUser(context.Background())
	apiErr, ok := apierr.From(err)
	if !ok || apiErr.Status != http.StatusUnauthorized {
		t.Fatalf("expected a 401 for a bare context, got %v", err)
	}
}

func TestCurrentUserDeletedAccount(t *testing.T) {
	s := newTestAuthService()
	ctx := requestdata.WithRequestData(context.Background(), &requestdata.RequestData{UserID: uuid.New()})
	_, err := s.CurrentUser(ctx)
	apiErr, ok := apierr.From(err)
	if !ok || apiErr.Status != http.StatusUnauthorized {
		t.Fatalf("expected a 401 when the account no longer exists, got %v", err)
	}
}
