package model

import "time"

// WardrobeItem — an owned catalog entry. Created and maintained by its
// owner through ordinary CRUD; referenced from planned outfits by id.
type WardrobeItem struct {
	ID      string `gorm:"primaryKey;type:uuid" json:"id"`
	OwnerID int64  `gorm:"not null;index" json:"owner_id"`

	Owner *User `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	Name     string `gorm:"not null" json:"name"`
	Category string `gorm:"not null" json:"category"`
	ImageURL string `json:"image_url,omitempty"`
	Note     string `json:"note,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
