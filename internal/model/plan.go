package model

import "time"

// RefKind discriminates the two reference variants a plan may carry.
type RefKind string

const (
	KindCatalogItem     RefKind = "CatalogItem"
	KindInspirationItem RefKind = "InspirationItem"
)

// ItemReference points either at an owned wardrobe item or at an item
// embedded in someone's inspiration post. Wire form follows the public API:
// {"itemType": ..., "item": ...}.
type ItemReference struct {
	Kind   RefKind `json:"itemType"`
	ItemID string  `json:"item"`
}

type ItemReferences []ItemReference

// DayLayout is the calendar-day key format of PlannedOutfit.Day.
const DayLayout = "2006-01-02"

// DayKey normalizes t to its calendar date in UTC, discarding time-of-day.
// A date-only string key sorts chronologically and keeps the composite
// unique index portable across dialects.
func DayKey(t time.Time) string {
	return t.UTC().Format(DayLayout)
}

// PlannedOutfit — at most one per (owner, day). A repeated plan for the
// same day fully replaces name, occasion note and items.
type PlannedOutfit struct {
	ID      string `gorm:"primaryKey;type:uuid" json:"id"`
	OwnerID int64  `gorm:"not null;uniqueIndex:idx_plans_owner_day" json:"owner_id"`

	Owner *User `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	Day          string         `gorm:"not null;size:10;uniqueIndex:idx_plans_owner_day" json:"day"`
	Name         string         `json:"name,omitempty"`
	OccasionNote string         `json:"occasion_note,omitempty"`
	Items        ItemReferences `gorm:"serializer:json;type:text" json:"items"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
