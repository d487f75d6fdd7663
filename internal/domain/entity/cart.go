package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartItem is one product in a user's cart. Name, price and image are
// snapshotted at add time so the cart keeps rendering even when the
// catalog entry changes underneath it.
type CartItem struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index;uniqueIndex:idx_cart_user_product" json:"userId"`
	ProductID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_product" json:"productId"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Price     float64        `gorm:"not null" json:"price"`
	Image     string         `gorm:"size:512" json:"image"`
	Quantity  int            `gorm:"not null;default:1" json:"quantity"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

// LineTotal returns price times quantity for this cart line.
func (ci *CartItem) LineTotal() float64 {
	return ci.Price * float64(ci.Quantity)
}

// BeforeCreate generates a UUID before creating a new cart item
func (ci *CartItem) BeforeCreate(tx *gorm.DB) error {
	if ci.ID == uuid.Nil {
		ci.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CartItem model
func (CartItem) TableName() string {
	return "cart_items"
}
