package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/trendora/trendora-api/internal/domain/analytics"
	"github.com/trendora/trendora-api/internal/domain/enum"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Order represents one placed purchase. Items holds the cart snapshot as
// the storefront wrote it, a JSON array of line records, kept verbatim in
// a JSONB column rather than normalized rows.
type Order struct {
	ID              uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	UserID          uuid.UUID          `gorm:"type:uuid;not null;index" json:"userId"`
	UserEmail       string             `gorm:"size:255;not null;index" json:"userEmail"`
	CustomerName    string             `gorm:"size:255;not null" json:"name"`
	Phone           string             `gorm:"size:20;not null" json:"phone"`
	ShippingAddress string             `gorm:"type:text;not null" json:"address"`
	State           string             `gorm:"size:100;not null" json:"state"`
	Pincode         string             `gorm:"size:10;not null" json:"pincode"`
	Lat             *float64           `json:"lat,omitempty"`
	Lng             *float64           `json:"lng,omitempty"`
	PaymentMethod   enum.PaymentMethod `gorm:"size:20;not null" json:"paymentMethod"`
	Status          enum.OrderStatus   `gorm:"size:20;not null;default:'Pending';index" json:"status"`
	Amount          float64            `gorm:"not null" json:"amount"`
	Items           datatypes.JSON     `gorm:"type:jsonb" json:"items"`
	OrderDate       time.Time          `gorm:"not null;index" json:"date"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
	DeletedAt       gorm.DeletedAt     `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// AnalyticsRecord converts the row into the raw record shape the
// aggregator consumes. The Items JSON is decoded leniently; lines that
// cannot be decoded at all are dropped, never failing the conversion.
func (o *Order) AnalyticsRecord() analytics.Order {
	amount := o.Amount
	rec := analytics.Order{
		ID:     o.ID.String(),
		Date:   o.OrderDate.UTC().Format(time.RFC3339),
		Amount: &amount,
		Status: o.Status.String(),
	}
	if len(o.Items) > 0 {
		var items []analytics.LineItem
		if err := json.Unmarshal(o.Items, &items); err == nil {
			rec.Items = items
		}
	}
	return rec
}
