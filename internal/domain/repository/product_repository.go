package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/trendora/trendora-api/internal/domain/entity"
	"github.com/trendora/trendora-api/internal/domain/enum"
	"github.com/trendora/trendora-api/pkg/pagination"
)

// ProductFilterParams holds filtering and sorting options for the catalog
type ProductFilterParams struct {
	Pagination *pagination.Params
	Gender     *enum.Gender
	Search     string
	SortBy     string // "price" or "name"
	SortOrder  string // "asc" or "desc"
}

// ProductRepository defines the interface for catalog persistence
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ProductFilterParams) ([]entity.Product, int64, error)
	ListAll(ctx context.Context) ([]entity.Product, error)
	Count(ctx context.Context) (int64, error)
}
