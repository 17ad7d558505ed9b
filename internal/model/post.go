package model

import "time"

// InspirationItem — a style-inspiration entry embedded in a post. Its id is
// unique across the whole store, but the item has no top-level address:
// it is reachable only through the post whose items list contains it.
type InspirationItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	ImageURL string `json:"image_url,omitempty"`
}

type InspirationItems []InspirationItem

// InspirationPost — social feed aggregate carrying embedded items.
type InspirationPost struct {
	ID       string `gorm:"primaryKey;type:uuid" json:"id"`
	AuthorID int64  `gorm:"not null;index" json:"author_id"`

	Author *User `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	Caption string           `json:"caption,omitempty"`
	Items   InspirationItems `gorm:"serializer:json;type:text" json:"items"`
	Likes   int64            `gorm:"not null;default:0" json:"likes"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
