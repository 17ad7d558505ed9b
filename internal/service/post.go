package service

import (
	"Lookbook/internal/model"
	"Lookbook/internal/repo"
	"context"
	"fmt"

	"github.com/google/uuid"
)

// PostService — the inspiration feed surface: publish a post with its
// embedded items, list the feed.
type PostService struct {
	repo repo.PostRepository
}

func NewPostService(r repo.PostRepository) *PostService {
	return &PostService{repo: r}
}

// CreatePost publishes a post. Embedded items get globally unique ids here;
// from then on they are referable from any user's plans.
func (s *PostService) CreatePost(ctx context.Context, authorID int64, caption string, items []model.InspirationItem) (*model.InspirationPost, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: a post needs at least one item", ErrInvalidRequest)
	}

	for i := range items {
		if items[i].ID == "" {
			items[i].ID = uuid.NewString()
		}
	}

	post := &model.InspirationPost{
		ID:       uuid.NewString(),
		AuthorID: authorID,
		Caption:  caption,
		Items:    items,
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) List(ctx context.Context) ([]model.InspirationPost, error) {
	return s.repo.List(ctx)
}
