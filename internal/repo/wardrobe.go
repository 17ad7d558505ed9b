package repo

import (
	"Lookbook/internal/model"
	"context"

	"gorm.io/gorm"
)

// WardrobeRepository is the catalog-store contract: a flat collection of
// owned wardrobe items with point lookups by id.
type WardrobeRepository interface {
	Create(ctx context.Context, item *model.WardrobeItem) error

	// GetByID fetches an item regardless of owner; ownership decisions
	// belong to the caller (the validator compares owner ids itself).
	GetByID(ctx context.Context, id string) (*model.WardrobeItem, error)

	ListByOwner(ctx context.Context, ownerID int64) ([]model.WardrobeItem, error)

	// Update applies the given column updates to the owner's item.
	// A miss (wrong id or wrong owner) is gorm.ErrRecordNotFound.
	Update(ctx context.Context, ownerID int64, id string, updates map[string]any) error

	// Delete removes the owner's item; a miss is gorm.ErrRecordNotFound.
	Delete(ctx context.Context, ownerID int64, id string) error
}

type wardrobeRepo struct {
	db *gorm.DB
}

func NewWardrobeRepository(db *gorm.DB) WardrobeRepository {
	return &wardrobeRepo{db: db}
}

func (r *wardrobeRepo) Create(ctx context.Context, item *model.WardrobeItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *wardrobeRepo) GetByID(ctx context.Context, id string) (*model.WardrobeItem, error) {
	var item model.WardrobeItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *wardrobeRepo) ListByOwner(ctx context.Context, ownerID int64) ([]model.WardrobeItem, error) {
	var items []model.WardrobeItem
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *wardrobeRepo) Update(ctx context.Context, ownerID int64, id string, updates map[string]any) error {
	tx := r.db.WithContext(ctx).
		Model(&model.WardrobeItem{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Updates(updates)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *wardrobeRepo) Delete(ctx context.Context, ownerID int64, id string) error {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&model.WardrobeItem{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
