package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WishlistItem is one product a user saved for later. Like cart lines it
// snapshots the display fields at add time.
type WishlistItem struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index;uniqueIndex:idx_wishlist_user_product" json:"userId"`
	ProductID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_wishlist_user_product" json:"productId"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Price     float64        `gorm:"not null" json:"price"`
	Image     string         `gorm:"size:512" json:"image"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new wishlist item
func (wi *WishlistItem) BeforeCreate(tx *gorm.DB) error {
	if wi.ID == uuid.Nil {
		wi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the WishlistItem model
func (WishlistItem) TableName() string {
	return "wishlist_items"
}
