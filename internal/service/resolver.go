package service

import (
	"Lookbook/internal/model"
	"Lookbook/internal/repo"
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// ResolvedDetails is the common materialized shape of both reference kinds.
type ResolvedDetails struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	ImageURL string `json:"image_url,omitempty"`
}

// ResolvedItem pairs a stored reference with the current state of the item
// it points at. Item is nil when the target has vanished since planning.
type ResolvedItem struct {
	Ref  model.ItemReference
	Item *ResolvedDetails
}

// Resolver materializes item references at read time. Unlike the validator
// it is lenient: historical plans must stay viewable after referenced items
// are gone, so a failed lookup degrades to a nil slot instead of failing
// the batch.
type Resolver struct {
	wardrobe repo.WardrobeRepository
	posts    repo.PostRepository
	logger   *zap.SugaredLogger
}

func NewResolver(wardrobe repo.WardrobeRepository, posts repo.PostRepository, logger *zap.SugaredLogger) *Resolver {
	return &Resolver{wardrobe: wardrobe, posts: posts, logger: logger}
}

// Resolve fetches the underlying item for every reference concurrently.
// The output is order- and length-preserving: one slot per input, written
// positionally, regardless of which lookup finishes first.
func (r *Resolver) Resolve(ctx context.Context, refs []model.ItemReference) []ResolvedItem {
	out := make([]ResolvedItem, len(refs))

	g, gctx := errgroup.WithContext(ctx)
	for i, ref := range refs {
		i, ref := i, ref
		out[i].Ref = ref
		g.Go(func() error {
			out[i].Item = r.resolveOne(gctx, ref)
			return nil
		})
	}
	// workers never return errors — a miss is a nil slot, and one slow
	// lookup must not cancel its siblings
	_ = g.Wait()

	return out
}

func (r *Resolver) resolveOne(ctx context.Context, ref model.ItemReference) *ResolvedDetails {
	switch ref.Kind {
	case model.KindCatalogItem:
		item, err := r.wardrobe.GetByID(ctx, ref.ItemID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				r.logger.Warnw("resolve: wardrobe lookup failed", "item_id", ref.ItemID, "error", err)
			}
			return nil
		}
		return &ResolvedDetails{
			ID:       item.ID,
			Name:     item.Name,
			Category: item.Category,
			ImageURL: item.ImageURL,
		}

	case model.KindInspirationItem:
		// the parent post may have been deleted since planning; that is the
		// expected dangling-reference case, not an error
		_, item, err := r.posts.FindPostContainingItem(ctx, ref.ItemID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				r.logger.Warnw("resolve: inspiration lookup failed", "item_id", ref.ItemID, "error", err)
			}
			return nil
		}
		return &ResolvedDetails{
			ID:       item.ID,
			Name:     item.Name,
			Category: item.Category,
			ImageURL: item.ImageURL,
		}
	}

	// unknown kinds are rejected at write time; anything that still reaches
	// here resolves to nothing
	return nil
}
