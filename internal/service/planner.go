package service

import (
	"Lookbook/internal/model"
	"Lookbook/internal/repo"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DefaultRangeDays is the read-range window when the caller gives no bounds.
const DefaultRangeDays = 7

// PlannedOutfitView is a plan with its references materialized — the
// read-time projection returned to callers, never persisted.
type PlannedOutfitView struct {
	ID           string
	OwnerID      int64
	Day          string
	Name         string
	OccasionNote string
	Items        []ResolvedItem
}

// PlannerService orchestrates validate → persist → resolve for writes and
// fetch-range → resolve for reads.
type PlannerService struct {
	plans     repo.PlanRepository
	validator *RefValidator
	resolver  *Resolver
	logger    *zap.SugaredLogger
}

func NewPlannerService(plans repo.PlanRepository, validator *RefValidator, resolver *Resolver, logger *zap.SugaredLogger) *PlannerService {
	return &PlannerService{plans: plans, validator: validator, resolver: resolver, logger: logger}
}

// PlanOutfit attaches a set of item references to the owner's calendar day.
// Validation failures abort before anything is written; once the plan is
// persisted, resolution failures only degrade the response payload.
func (s *PlannerService) PlanOutfit(ctx context.Context, ownerID int64, day time.Time, name, occasionNote string, refs []model.ItemReference) (*PlannedOutfitView, error) {
	if day.IsZero() {
		return nil, fmt.Errorf("%w: missing date", ErrInvalidRequest)
	}
	if len(refs) == 0 {
		return nil, fmt.Errorf("%w: items must be a non-empty list", ErrInvalidRequest)
	}

	if err := s.validator.Validate(ctx, ownerID, refs); err != nil {
		return nil, err
	}

	plan := &model.PlannedOutfit{
		OwnerID:      ownerID,
		Day:          model.DayKey(day),
		Name:         name,
		OccasionNote: occasionNote,
		Items:        refs,
	}

	// The composite (owner, day) key is enforced by the store's atomic
	// upsert. Store unavailability is the one retryable failure class;
	// everything client-side was already rejected above.
	var stored *model.PlannedOutfit
	backoff := retry.WithMaxRetries(2, retry.NewExponential(100*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		p, err := s.plans.Upsert(ctx, plan)
		if err != nil {
			return retry.RetryableError(err)
		}
		stored = p
		return nil
	})
	if err != nil {
		s.logger.Errorw("plan upsert failed", "owner_id", ownerID, "day", plan.Day, "error", err)
		return nil, err
	}

	view := s.toView(*stored, s.resolver.Resolve(ctx, stored.Items))
	return &view, nil
}

// GetPlannedOutfits returns the owner's plans for the inclusive day range,
// defaulting to [today, today+7] per missing bound. References of all plans
// in the range are resolved in one batch to maximize lookup concurrency.
func (s *PlannerService) GetPlannedOutfits(ctx context.Context, ownerID int64, start, end *time.Time) ([]PlannedOutfitView, error) {
	now := time.Now().UTC()
	startDay := model.DayKey(now)
	endDay := model.DayKey(now.AddDate(0, 0, DefaultRangeDays))
	if start != nil {
		startDay = model.DayKey(*start)
	}
	if end != nil {
		endDay = model.DayKey(*end)
	}

	plans, err := s.plans.FindRange(ctx, ownerID, startDay, endDay)
	if err != nil {
		return nil, err
	}

	// one resolver call across every plan in the range
	var all []model.ItemReference
	for _, p := range plans {
		all = append(all, p.Items...)
	}
	resolved := s.resolver.Resolve(ctx, all)

	views := make([]PlannedOutfitView, 0, len(plans))
	offset := 0
	for _, p := range plans {
		n := len(p.Items)
		views = append(views, s.toView(p, resolved[offset:offset+n]))
		offset += n
	}
	return views, nil
}

// DeletePlannedOutfit removes the owner's plan. A miss — including a plan
// belonging to someone else — surfaces as ErrPlanNotFound.
func (s *PlannerService) DeletePlannedOutfit(ctx context.Context, ownerID int64, planID string) error {
	err := s.plans.Delete(ctx, ownerID, planID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", ErrPlanNotFound, planID)
	}
	return err
}

func (s *PlannerService) toView(p model.PlannedOutfit, items []ResolvedItem) PlannedOutfitView {
	return PlannedOutfitView{
		ID:           p.ID,
		OwnerID:      p.OwnerID,
		Day:          p.Day,
		Name:         p.Name,
		OccasionNote: p.OccasionNote,
		Items:        items,
	}
}
