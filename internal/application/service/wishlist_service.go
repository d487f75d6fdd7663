package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/trendora/trendora-api/internal/domain/entity"
	"github.com/trendora/trendora-api/internal/domain/repository"
	"github.com/trendora/trendora-api/pkg/apperror"
)

// WishlistService handles saved-for-later products
type WishlistService struct {
	wishlistRepo repository.WishlistRepository
	cartService  *CartService
	productRepo  repository.ProductRepository
}

// NewWishlistService creates a new wishlist service
func NewWishlistService(
	wishlistRepo repository.WishlistRepository,
	cartService *CartService,
	productRepo repository.ProductRepository,
) *WishlistService {
	return &WishlistService{
		wishlistRepo: wishlistRepo,
		cartService:  cartService,
		productRepo:  productRepo,
	}
}

// GetWishlist returns the user's saved products
func (s *WishlistService) GetWishlist(ctx context.Context, userID uuid.UUID) ([]entity.WishlistItem, error) {
	items, err := s.wishlistRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []entity.WishlistItem{}
	}
	return items, nil
}

// AddToWishlist saves a product for later
func (s *WishlistService) AddToWishlist(ctx context.Context, userID, productID uuid.UUID) ([]entity.WishlistItem, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	existing, err := s.wishlistRepo.GetByUserAndProduct(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Product is already in the wishlist")
	}

	item := &entity.WishlistItem{
		UserID:    userID,
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Image:     product.Image,
	}
	if err := s.wishlistRepo.Add(ctx, item); err != nil {
		return nil, err
	}

	return s.GetWishlist(ctx, userID)
}

// RemoveFromWishlist drops a saved product
func (s *WishlistService) RemoveFromWishlist(ctx context.Context, userID, productID uuid.UUID) ([]entity.WishlistItem, error) {
	item, err := s.wishlistRepo.GetByUserAndProduct(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Wishlist item")
	}

	if err := s.wishlistRepo.Remove(ctx, userID, productID); err != nil {
		return nil, err
	}
	return s.GetWishlist(ctx, userID)
}

// MoveToCart adds a saved product to the cart and removes it from the
// wishlist. If the product already sits in the cart the wishlist entry
// is removed anyway.
func (s *WishlistService) MoveToCart(ctx context.Context, userID, productID uuid.UUID) (*CartOutput, error) {
	item, err := s.wishlistRepo.GetByUserAndProduct(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Wishlist item")
	}

	cart, err := s.cartService.AddToCart(ctx, userID, productID, 1)
	if err != nil {
		appErr := apperror.From(err)
		if appErr.Code != 409 {
			return nil, err
		}
		cart, err = s.cartService.GetCart(ctx, userID)
		if err != nil {
			return nil, err
		}
	}

	if err := s.wishlistRepo.Remove(ctx, userID, productID); err != nil {
		return nil, err
	}
	return cart, nil
}
