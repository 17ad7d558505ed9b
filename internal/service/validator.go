package service

import (
	"Lookbook/internal/model"
	"Lookbook/internal/repo"
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// hexIDRe matches the 24-hex identity tokens imported catalogs use.
var hexIDRe = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// validIdentity reports whether id is a well-formed identity token:
// either a UUID or a 24-character hex id.
func validIdentity(id string) bool {
	if hexIDRe.MatchString(id) {
		return true
	}
	_, err := uuid.Parse(id)
	return err == nil
}

// RefValidator checks a plan request's item references at write time.
// It is strict and fail-fast: the first bad reference aborts the whole
// plan, before anything is persisted. The read-time resolver is the
// lenient counterpart.
type RefValidator struct {
	wardrobe repo.WardrobeRepository
	posts    repo.PostRepository
}

func NewRefValidator(wardrobe repo.WardrobeRepository, posts repo.PostRepository) *RefValidator {
	return &RefValidator{wardrobe: wardrobe, posts: posts}
}

// Validate checks shape, kind, existence and (for wardrobe refs) ownership
// of every reference. Read-only; no side effects.
func (v *RefValidator) Validate(ctx context.Context, ownerID int64, refs []model.ItemReference) error {
	for _, ref := range refs {
		if !validIdentity(ref.ItemID) {
			return fmt.Errorf("%w: %q", ErrMalformedReference, ref.ItemID)
		}

		switch ref.Kind {
		case model.KindCatalogItem:
			item, err := v.wardrobe.GetByID(ctx, ref.ItemID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s", ErrReferenceNotFound, ref.ItemID)
			}
			if err != nil {
				return err
			}
			if item.OwnerID != ownerID {
				return fmt.Errorf("%w: %s", ErrOwnershipViolation, ref.ItemID)
			}

		case model.KindInspirationItem:
			// reverse lookup; any publicly visible item may be referenced,
			// so existence is the only check
			_, _, err := v.posts.FindPostContainingItem(ctx, ref.ItemID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s", ErrReferenceNotFound, ref.ItemID)
			}
			if err != nil {
				return err
			}

		default:
			return fmt.Errorf("%w: %q", ErrUnknownReferenceKind, ref.Kind)
		}
	}
	return nil
}
