package main

import (
	"Lookbook/internal/config"
	"Lookbook/internal/handlers"
	"Lookbook/internal/middleware"
	"Lookbook/internal/repo"
	"Lookbook/internal/service"
	"net/http"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	sugar := logger.Sugar()
	middleware.SetLogger(sugar)
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	wardrobeRepo := repo.NewWardrobeRepository(gormDB)
	postRepo := repo.NewPostRepository(gormDB)
	planRepo := repo.NewPlanRepository(gormDB)

	userService := service.NewUserService(userRepo)
	wardrobeService := service.NewWardrobeService(wardrobeRepo)
	postService := service.NewPostService(postRepo)
	plannerService := service.NewPlannerService(
		planRepo,
		service.NewRefValidator(wardrobeRepo, postRepo),
		service.NewResolver(wardrobeRepo, postRepo, sugar),
		sugar,
	)

	h := handlers.NewHandler(userService, wardrobeService, postService, plannerService, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DatabaseDSN", cfg.DatabaseDSN,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
