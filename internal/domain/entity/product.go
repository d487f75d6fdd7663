package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/trendora/trendora-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Product represents a catalog entry. Prices are plain JSON numbers to
// match the record-store contract the storefront was written against.
type Product struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Description string         `gorm:"type:text" json:"description,omitempty"`
	Price       float64        `gorm:"not null" json:"price"`
	Gender      enum.Gender    `gorm:"size:20;index" json:"gender"`
	Image       string         `gorm:"size:512" json:"image"`
	Stock       int            `gorm:"default:0" json:"stock"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}
