package handlers

import (
	"Lookbook/internal/config"
	"Lookbook/internal/middleware"
	"Lookbook/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler wires the routes to their handlers
func NewHandler(
	userService *service.UserService,
	wardrobeService *service.WardrobeService,
	postService *service.PostService,
	plannerService *service.PlannerService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(userService, logger, config)
	wardrobeHandler := NewWardrobeHandler(wardrobeService, logger)
	postHandler := NewPostHandler(postService, logger)
	plannerHandler := NewPlannerHandler(plannerService, logger)

	// User routes
	r.Post("/api/user/register", userHandler.Register)
	r.Post("/api/user/login", userHandler.Login)

	// Wardrobe catalog (owner-scoped CRUD)
	r.Route("/api/wardrobe", func(r chi.Router) {
		r.Post("/", wardrobeHandler.Create)
		r.Get("/", wardrobeHandler.List)
		r.Get("/{id}", wardrobeHandler.Get)
		r.Put("/{id}", wardrobeHandler.Update)
		r.Delete("/{id}", wardrobeHandler.Delete)
	})

	// Inspiration feed
	r.Route("/api/posts", func(r chi.Router) {
		r.Post("/", postHandler.Create)
		r.Get("/", postHandler.List)
	})

	// Outfit planner
	r.Route("/api/planner", func(r chi.Router) {
		r.Post("/", plannerHandler.Create)
		r.Get("/", plannerHandler.List)
		r.Delete("/{id}", plannerHandler.Delete)
	})

	return &Handler{Router: r}
}
