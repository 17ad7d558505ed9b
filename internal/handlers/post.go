package handlers

import (
	"Lookbook/internal/middleware"
	"Lookbook/internal/model"
	"Lookbook/internal/service"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// PostHandler serves the inspiration feed.
type PostHandler struct {
	Service *service.PostService
	Logger  *zap.SugaredLogger
}

func NewPostHandler(s *service.PostService, logger *zap.SugaredLogger) *PostHandler {
	return &PostHandler{Service: s, Logger: logger}
}

type postRequest struct {
	Caption string `json:"caption,omitempty"`
	Items   []struct {
		Name     string `json:"name"`
		Category string `json:"category"`
		ImageURL string `json:"image_url,omitempty"`
	} `json:"items"`
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	items := make([]model.InspirationItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, model.InspirationItem{
			Name:     it.Name,
			Category: it.Category,
			ImageURL: it.ImageURL,
		})
	}

	post, err := h.Service.CreatePost(r.Context(), userID, req.Caption, items)
	if errors.Is(err, service.ErrInvalidRequest) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		h.Logger.Errorw("Create post: service error", "user_id", userID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(post)
}

func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUserIDFromContext(r.Context()); !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	posts, err := h.Service.List(r.Context())
	if err != nil {
		h.Logger.Errorw("List posts: service error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(posts)
}
