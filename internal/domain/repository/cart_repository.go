package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/trendora/trendora-api/internal/domain/entity"
)

// CartRepository defines the interface for cart persistence
type CartRepository interface {
	Add(ctx context.Context, item *entity.CartItem) error
	GetByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*entity.CartItem, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.CartItem, error)
	Update(ctx context.Context, item *entity.CartItem) error
	Remove(ctx context.Context, userID, productID uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID) error
}

// WishlistRepository defines the interface for wishlist persistence
type WishlistRepository interface {
	Add(ctx context.Context, item *entity.WishlistItem) error
	GetByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*entity.WishlistItem, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.WishlistItem, error)
	Remove(ctx context.Context, userID, productID uuid.UUID) error
}
