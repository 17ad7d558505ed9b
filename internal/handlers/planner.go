package handlers

import (
	"Lookbook/internal/middleware"
	"Lookbook/internal/model"
	"Lookbook/internal/service"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// PlannerHandler serves the outfit planner: attach a calendar day to item
// references, read back a resolved range, delete a plan.
type PlannerHandler struct {
	Service *service.PlannerService
	Logger  *zap.SugaredLogger
}

func NewPlannerHandler(s *service.PlannerService, logger *zap.SugaredLogger) *PlannerHandler {
	return &PlannerHandler{Service: s, Logger: logger}
}

type itemRefDTO struct {
	ItemType string `json:"itemType"`
	Item     string `json:"item"`
}

type planRequest struct {
	Date       string       `json:"date"`
	OutfitName string       `json:"outfitName,omitempty"`
	Occasion   string       `json:"occasion,omitempty"`
	Items      []itemRefDTO `json:"items"`
}

type resolvedItemDTO struct {
	ItemType string `json:"itemType"`
	Item     string `json:"item"`
	// Resolved is null when the referenced item has vanished since planning;
	// the UI renders a placeholder for those.
	Resolved *service.ResolvedDetails `json:"resolved"`
}

type planResponse struct {
	ID         string            `json:"id"`
	Date       string            `json:"date"`
	OutfitName string            `json:"outfitName,omitempty"`
	Occasion   string            `json:"occasion,omitempty"`
	Items      []resolvedItemDTO `json:"items"`
}

// parsePlanDate accepts a date-only value or a full timestamp.
func parsePlanDate(s string) (time.Time, error) {
	if t, err := time.Parse(model.DayLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func toPlanResponse(v service.PlannedOutfitView) planResponse {
	items := make([]resolvedItemDTO, 0, len(v.Items))
	for _, ri := range v.Items {
		items = append(items, resolvedItemDTO{
			ItemType: string(ri.Ref.Kind),
			Item:     ri.Ref.ItemID,
			Resolved: ri.Item,
		})
	}
	return planResponse{
		ID:         v.ID,
		Date:       v.Day,
		OutfitName: v.Name,
		Occasion:   v.OccasionNote,
		Items:      items,
	}
}

// writePlannerError maps the planner failure taxonomy to status codes.
func (h *PlannerHandler) writePlannerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidRequest),
		errors.Is(err, service.ErrMalformedReference),
		errors.Is(err, service.ErrUnknownReferenceKind):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrReferenceNotFound),
		errors.Is(err, service.ErrOwnershipViolation),
		errors.Is(err, service.ErrPlanNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		h.Logger.Errorw("planner: service error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (h *PlannerHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Plan: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.Date == "" {
		http.Error(w, "missing date", http.StatusBadRequest)
		return
	}
	day, err := parsePlanDate(req.Date)
	if err != nil {
		h.Logger.Warnw("Plan: invalid date", "value", req.Date, "error", err)
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	refs := make([]model.ItemReference, 0, len(req.Items))
	for _, it := range req.Items {
		refs = append(refs, model.ItemReference{Kind: model.RefKind(it.ItemType), ItemID: it.Item})
	}

	view, err := h.Service.PlanOutfit(r.Context(), userID, day, req.OutfitName, req.Occasion, refs)
	if err != nil {
		h.writePlannerError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(toPlanResponse(*view))
}

func (h *PlannerHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var start, end *time.Time
	if s := r.URL.Query().Get("startDate"); s != "" {
		t, err := parsePlanDate(s)
		if err != nil {
			http.Error(w, "invalid startDate", http.StatusBadRequest)
			return
		}
		start = &t
	}
	if s := r.URL.Query().Get("endDate"); s != "" {
		t, err := parsePlanDate(s)
		if err != nil {
			http.Error(w, "invalid endDate", http.StatusBadRequest)
			return
		}
		end = &t
	}

	views, err := h.Service.GetPlannedOutfits(r.Context(), userID, start, end)
	if err != nil {
		h.writePlannerError(w, err)
		return
	}

	resp := make([]planResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, toPlanResponse(v))
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *PlannerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.Service.DeletePlannedOutfit(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		h.writePlannerError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
