package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/trendora/trendora-api/internal/domain/entity"
	"github.com/trendora/trendora-api/internal/domain/enum"
	"github.com/trendora/trendora-api/pkg/pagination"
)

// OrderFilterParams holds filtering options for listing orders
type OrderFilterParams struct {
	Pagination *pagination.Params
	UserID     *uuid.UUID
	Status     *enum.OrderStatus
	StartDate  *time.Time
	EndDate    *time.Time
	Search     string // matches customer name or email
}

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error
	List(ctx context.Context, params *OrderFilterParams) ([]entity.Order, int64, error)
	// ListAll returns every order, oldest first. The analytics aggregation
	// runs over the full materialized list.
	ListAll(ctx context.Context) ([]entity.Order, error)
	ListRecent(ctx context.Context, limit int) ([]entity.Order, error)
	Count(ctx context.Context) (int64, error)
}
