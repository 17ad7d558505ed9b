package service

import (
	"Lookbook/internal/model"
	"Lookbook/internal/repo"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrItemNotFound = errors.New("wardrobe item not found")

// WardrobeService — ordinary owner-scoped CRUD over the catalog store.
type WardrobeService struct {
	repo repo.WardrobeRepository
}

func NewWardrobeService(r repo.WardrobeRepository) *WardrobeService {
	return &WardrobeService{repo: r}
}

func (s *WardrobeService) Create(ctx context.Context, ownerID int64, name, category, imageURL, note string) (*model.WardrobeItem, error) {
	if name == "" || category == "" {
		return nil, fmt.Errorf("%w: name and category are required", ErrInvalidRequest)
	}

	item := &model.WardrobeItem{
		ID:       uuid.NewString(),
		OwnerID:  ownerID,
		Name:     name,
		Category: category,
		ImageURL: imageURL,
		Note:     note,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *WardrobeService) List(ctx context.Context, ownerID int64) ([]model.WardrobeItem, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// Get returns the owner's item; someone else's item is indistinguishable
// from a missing one.
func (s *WardrobeService) Get(ctx context.Context, ownerID int64, id string) (*model.WardrobeItem, error) {
	item, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	if item.OwnerID != ownerID {
		return nil, ErrItemNotFound
	}
	return item, nil
}

func (s *WardrobeService) Update(ctx context.Context, ownerID int64, id string, updates map[string]any) (*model.WardrobeItem, error) {
	err := s.repo.Update(ctx, ownerID, id, updates)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, ownerID, id)
}

func (s *WardrobeService) Delete(ctx context.Context, ownerID int64, id string) error {
	err := s.repo.Delete(ctx, ownerID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrItemNotFound
	}
	return err
}
