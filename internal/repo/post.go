package repo

import (
	"Lookbook/internal/model"
	"context"

	"gorm.io/gorm"
)

// PostRepository is the inspiration-store contract. Embedded items have no
// table of their own, so the only way to an item is through its post.
type PostRepository interface {
	Create(ctx context.Context, post *model.InspirationPost) error
	List(ctx context.Context) ([]model.InspirationPost, error)

	// FindPostContainingItem is the reverse lookup: scan for the post whose
	// embedded items list contains itemID and extract exactly that element.
	// A miss is gorm.ErrRecordNotFound.
	FindPostContainingItem(ctx context.Context, itemID string) (*model.InspirationPost, *model.InspirationItem, error)
}

type postRepo struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepo{db: db}
}

func (r *postRepo) Create(ctx context.Context, post *model.InspirationPost) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepo) List(ctx context.Context) ([]model.InspirationPost, error) {
	var posts []model.InspirationPost
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepo) FindPostContainingItem(ctx context.Context, itemID string) (*model.InspirationPost, *model.InspirationItem, error) {
	// This is a container scan, not a point lookup. The LIKE over the
	// serialized items column narrows candidates; the embedded list is then
	// scanned in Go to confirm the id matches an element id and not some
	// other field of the JSON.
	var posts []model.InspirationPost
	err := r.db.WithContext(ctx).
		Where("items LIKE ?", "%"+itemID+"%").
		Find(&posts).Error
	if err != nil {
		return nil, nil, err
	}

	for i := range posts {
		for j := range posts[i].Items {
			if posts[i].Items[j].ID == itemID {
				return &posts[i], &posts[i].Items[j], nil
			}
		}
	}
	return nil, nil, gorm.ErrRecordNotFound
}
