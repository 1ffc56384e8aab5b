package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/clearboard/clearboard-backend/internal/framework"
	"github.com/clearboard/clearboard-backend/internal/logger"
	"github.com/clearboard/clearboard-backend/internal/platform/apierr"
	"github.com/clearboard/clearboard-backend/internal/repos"
	"github.com/clearboard/clearboard-backend/internal/types"
)

// Selection is a user's resolved framework choice: the framework type
// plus the element subset surfaced on the roster. An empty Elements
// slice means "all elements".
type Selection struct {
	FrameworkType string   `json:"framework_type"`
	Elements      []string `json:"elements"`
}

type FrameworkService interface {
	ListFrameworks(ctx context.Context) ([]framework.Framework, error)
	GetSelection(ctx context.Context, userID uuid.UUID) (Selection, error)
	SaveSelection(ctx context.Context, userID uuid.UUID, sel Selection) (Selection, error)
}

type frameworkService struct {
	db            *gorm.DB
	log           *logger.Logger
	selectionRepo repos.FrameworkSelectionRepo
	cache         CacheService
}

func NewFrameworkService(
	db *gorm.DB,
	log *logger.Logger,
	selectionRepo repos.FrameworkSelectionRepo,
	cache CacheService,
) FrameworkService {
	return &frameworkService{
		db:            db,
		log:           log.With("service", "FrameworkService"),
		selectionRepo: selectionRepo,
		cache:         cache,
	}
}

func (s *frameworkService) ListFrameworks(ctx context.Context) ([]framework.Framework, error) {
	return framework.All()
}

func (s *frameworkService) GetSelection(ctx context.Context, userID uuid.UUID) (Selection, error) {
	row, err := s.selectionRepo.GetByUser(ctx, nil, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Selection{FrameworkType: framework.TypeDanielson, Elements: nil}, nil
		}
		return Selection{}, err
	}
	var elements []string
	if len(row.SelectedElements) > 0 {
		if err := json.Unmarshal(row.SelectedElements, &elements); err != nil {
			s.log.Warn("Stored element selection is not valid JSON, ignoring", "user_id", userID, "error", err)
			elements = nil
		}
	}
	return Selection{FrameworkType: row.FrameworkType, Elements: elements}, nil
}

func (s *frameworkService) SaveSelection(ctx context.Context, userID uuid.UUID, sel Selection) (Selection, error) {
	fw, err := framework.ByType(sel.FrameworkType)
	if err != nil {
		return Selection{}, apierr.BadRequest("unknown_framework", "%w", err)
	}
	known := fw.ElementIDs()
	for _, id := range sel.Elements {
		if !containsString(known, id) {
			return Selection{}, apierr.BadRequest("unknown_element",
				"element %q is not part of framework %q", id, sel.FrameworkType)
		}
	}
	raw, err := json.Marshal(sel.Elements)
	if err != nil {
		return Selection{}, err
	}
	row := &types.FrameworkSelection{
		ID:               uuid.New(),
		UserID:           userID,
		FrameworkType:    fw.Type,
		SelectedElements: datatypes.JSON(raw),
	}
	if err := s.selectionRepo.Upsert(ctx, nil, row); err != nil {
		return Selection{}, fmt.Errorf("failed to save framework selection: %w", err)
	}
	s.cache.Delete(ctx, rosterCacheKey(userID))
	return s.GetSelection(ctx, userID)
}

func containsString(items []string, want string) bool {
	for _, it := range items {
		if it == want {
			return true
		}
	}
	return false
}
