package service

import (
	"Lookbook/internal/model"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestResolver(w *mockWardrobeRepo, p *mockPostRepo) *Resolver {
	return NewResolver(w, p, zap.NewNop().Sugar())
}

func TestResolver_OrderPreservedUnderReversedLatencies(t *testing.T) {
	w := new(mockWardrobeRepo)
	p := new(mockPostRepo)
	r := newTestResolver(w, p)

	idA, idB, idC := uuid.NewString(), uuid.NewString(), uuid.NewString()

	// A is the slowest lookup, C the fastest: output order must still be A, B, C
	w.On("GetByID", mock.Anything, idA).
		Return(&model.WardrobeItem{ID: idA, Name: "blazer", Category: "outerwear"}, nil).
		After(60 * time.Millisecond)
	p.On("FindPostContainingItem", mock.Anything, idB).
		Return(&model.InspirationPost{ID: uuid.NewString()}, &model.InspirationItem{ID: idB, Name: "slip dress", Category: "dresses"}, nil).
		After(30 * time.Millisecond)
	w.On("GetByID", mock.Anything, idC).
		Return(&model.WardrobeItem{ID: idC, Name: "loafers", Category: "shoes"}, nil)

	out := r.Resolve(context.Background(), []model.ItemReference{
		{Kind: model.KindCatalogItem, ItemID: idA},
		{Kind: model.KindInspirationItem, ItemID: idB},
		{Kind: model.KindCatalogItem, ItemID: idC},
	})

	if assert.Len(t, out, 3) {
		assert.Equal(t, idA, out[0].Ref.ItemID)
		assert.Equal(t, "blazer", out[0].Item.Name)
		assert.Equal(t, idB, out[1].Ref.ItemID)
		assert.Equal(t, "slip dress", out[1].Item.Name)
		assert.Equal(t, idC, out[2].Ref.ItemID)
		assert.Equal(t, "loafers", out[2].Item.Name)
	}
}

func TestResolver_LookupsRunConcurrently(t *testing.T) {
	w := new(mockWardrobeRepo)
	r := newTestResolver(w, new(mockPostRepo))

	const n = 5
	refs := make([]model.ItemReference, 0, n)
	for i := 0; i < n; i++ {
		id := uuid.NewString()
		refs = append(refs, model.ItemReference{Kind: model.KindCatalogItem, ItemID: id})
		w.On("GetByID", mock.Anything, id).
			Return(&model.WardrobeItem{ID: id, Name: "item", Category: "c"}, nil).
			After(50 * time.Millisecond)
	}

	start := time.Now()
	out := r.Resolve(context.Background(), refs)
	elapsed := time.Since(start)

	assert.Len(t, out, n)
	// sequential resolution would take ~n*50ms; the fan-out keeps it near one lookup
	assert.Less(t, elapsed, time.Duration(n)*50*time.Millisecond/2, "lookups appear to run sequentially")
}

func TestResolver_VanishedItemsDegradeToNil(t *testing.T) {
	w := new(mockWardrobeRepo)
	p := new(mockPostRepo)
	r := newTestResolver(w, p)

	okID, goneID, brokenID := uuid.NewString(), uuid.NewString(), uuid.NewString()

	w.On("GetByID", mock.Anything, okID).
		Return(&model.WardrobeItem{ID: okID, Name: "trench", Category: "outerwear"}, nil)
	// parent post deleted after planning
	p.On("FindPostContainingItem", mock.Anything, goneID).
		Return((*model.InspirationPost)(nil), (*model.InspirationItem)(nil), gorm.ErrRecordNotFound)
	// store error on one lookup must not fail the batch either
	w.On("GetByID", mock.Anything, brokenID).
		Return((*model.WardrobeItem)(nil), errors.New("connection reset"))

	out := r.Resolve(context.Background(), []model.ItemReference{
		{Kind: model.KindCatalogItem, ItemID: okID},
		{Kind: model.KindInspirationItem, ItemID: goneID},
		{Kind: model.KindCatalogItem, ItemID: brokenID},
	})

	// length-preserving: one slot per input, failed slots nil, others intact
	if assert.Len(t, out, 3) {
		assert.NotNil(t, out[0].Item)
		assert.Equal(t, "trench", out[0].Item.Name)
		assert.Nil(t, out[1].Item)
		assert.Equal(t, goneID, out[1].Ref.ItemID)
		assert.Nil(t, out[2].Item)
	}
}

func TestResolver_EmptyBatch(t *testing.T) {
	r := newTestResolver(new(mockWardrobeRepo), new(mockPostRepo))
	out := r.Resolve(context.Background(), nil)
	assert.Empty(t, out)
}
