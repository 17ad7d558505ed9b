package handlers_test

import (
	"Lookbook/internal/config"
	"Lookbook/internal/handlers"
	"Lookbook/internal/middleware"
	"Lookbook/internal/model"
	"Lookbook/internal/repo"
	"Lookbook/internal/service"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// Local light mocks for the four stores

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	args := m.Called(ctx, login)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

type mockWardrobeRepo struct{ mock.Mock }

func (m *mockWardrobeRepo) Create(ctx context.Context, item *model.WardrobeItem) error {
	return m.Called(ctx, item).Error(0)
}
func (m *mockWardrobeRepo) GetByID(ctx context.Context, id string) (*model.WardrobeItem, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.WardrobeItem); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockWardrobeRepo) ListByOwner(ctx context.Context, ownerID int64) ([]model.WardrobeItem, error) {
	args := m.Called(ctx, ownerID)
	if v, ok := args.Get(0).([]model.WardrobeItem); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockWardrobeRepo) Update(ctx context.Context, ownerID int64, id string, updates map[string]any) error {
	return m.Called(ctx, ownerID, id, updates).Error(0)
}
func (m *mockWardrobeRepo) Delete(ctx context.Context, ownerID int64, id string) error {
	return m.Called(ctx, ownerID, id).Error(0)
}

var _ repo.WardrobeRepository = (*mockWardrobeRepo)(nil)

type mockPostRepo struct{ mock.Mock }

func (m *mockPostRepo) Create(ctx context.Context, post *model.InspirationPost) error {
	return m.Called(ctx, post).Error(0)
}
func (m *mockPostRepo) List(ctx context.Context) ([]model.InspirationPost, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.InspirationPost); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockPostRepo) FindPostContainingItem(ctx context.Context, itemID string) (*model.InspirationPost, *model.InspirationItem, error) {
	args := m.Called(ctx, itemID)
	post, _ := args.Get(0).(*model.InspirationPost)
	item, _ := args.Get(1).(*model.InspirationItem)
	return post, item, args.Error(2)
}

var _ repo.PostRepository = (*mockPostRepo)(nil)

type mockPlanRepo struct{ mock.Mock }

func (m *mockPlanRepo) Upsert(ctx context.Context, plan *model.PlannedOutfit) (*model.PlannedOutfit, error) {
	args := m.Called(ctx, plan)
	if v, ok := args.Get(0).(*model.PlannedOutfit); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockPlanRepo) FindRange(ctx context.Context, ownerID int64, startDay, endDay string) ([]model.PlannedOutfit, error) {
	args := m.Called(ctx, ownerID, startDay, endDay)
	if v, ok := args.Get(0).([]model.PlannedOutfit); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockPlanRepo) Delete(ctx context.Context, ownerID int64, planID string) error {
	return m.Called(ctx, ownerID, planID).Error(0)
}

var _ repo.PlanRepository = (*mockPlanRepo)(nil)

// --- Helpers ---

const testSecret = "test-secret"

// testStores bundles the mocks wired behind a test router.
type testStores struct {
	users    *mockUserRepo
	wardrobe *mockWardrobeRepo
	posts    *mockPostRepo
	plans    *mockPlanRepo
}

func newTestRouter(t *testing.T) (http.Handler, *testStores) {
	t.Helper()
	cfg := &config.Config{AuthSecret: testSecret}
	logger := zap.NewNop().Sugar()

	stores := &testStores{
		users:    new(mockUserRepo),
		wardrobe: new(mockWardrobeRepo),
		posts:    new(mockPostRepo),
		plans:    new(mockPlanRepo),
	}

	userSvc := service.NewUserService(stores.users)
	wardrobeSvc := service.NewWardrobeService(stores.wardrobe)
	postSvc := service.NewPostService(stores.posts)
	plannerSvc := service.NewPlannerService(
		stores.plans,
		service.NewRefValidator(stores.wardrobe, stores.posts),
		service.NewResolver(stores.wardrobe, stores.posts, logger),
		logger,
	)

	h := handlers.NewHandler(userSvc, wardrobeSvc, postSvc, plannerSvc, logger, cfg)
	return h.Router, stores
}

func addAuthCookie(t *testing.T, req *http.Request, userID int64) {
	t.Helper()
	rr := httptest.NewRecorder()
	_ = middleware.SetLoginCookie(rr, userID, testSecret)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
}
