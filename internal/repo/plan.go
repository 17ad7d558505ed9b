package repo

import (
	"Lookbook/internal/model"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PlanRepository persists planned outfits keyed by (owner, day).
type PlanRepository interface {
	// Upsert atomically creates or fully replaces the plan for the
	// (owner, day) pair and returns the stored row. The conflict is resolved
	// by the database's upsert primitive, never by check-then-write.
	Upsert(ctx context.Context, plan *model.PlannedOutfit) (*model.PlannedOutfit, error)

	// FindRange returns the owner's plans with startDay <= day <= endDay,
	// ascending by day.
	FindRange(ctx context.Context, ownerID int64, startDay, endDay string) ([]model.PlannedOutfit, error)

	// Delete removes the owner's plan by id. A miss — including a plan that
	// exists but belongs to someone else — is gorm.ErrRecordNotFound.
	Delete(ctx context.Context, ownerID int64, planID string) error
}

type planRepo struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepo{db: db}
}

func (r *planRepo) Upsert(ctx context.Context, plan *model.PlannedOutfit) (*model.PlannedOutfit, error) {
	if plan.ID == "" {
		plan.ID = uuid.NewString()
	}

	// On conflict the existing row keeps its id and created_at; the mutable
	// fields are replaced wholesale (a re-plan is an overwrite, not a merge).
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "owner_id"}, {Name: "day"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "occasion_note", "items", "updated_at",
		}),
	}).Create(plan).Error
	if err != nil {
		return nil, err
	}

	var stored model.PlannedOutfit
	err = r.db.WithContext(ctx).
		Where("owner_id = ? AND day = ?", plan.OwnerID, plan.Day).
		First(&stored).Error
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *planRepo) FindRange(ctx context.Context, ownerID int64, startDay, endDay string) ([]model.PlannedOutfit, error) {
	var plans []model.PlannedOutfit
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND day BETWEEN ? AND ?", ownerID, startDay, endDay).
		Order("day ASC").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *planRepo) Delete(ctx context.Context, ownerID int64, planID string) error {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", planID, ownerID).
		Delete(&model.PlannedOutfit{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
