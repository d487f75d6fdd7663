package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/trendora/trendora-api/internal/domain/entity"
	"github.com/trendora/trendora-api/internal/domain/repository"
	"github.com/trendora/trendora-api/pkg/apperror"
)

// CartService handles the shopping cart
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService creates a new cart service
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{cartRepo: cartRepo, productRepo: productRepo}
}

// CartOutput pairs the cart lines with their running totals
type CartOutput struct {
	Items     []entity.CartItem `json:"items"`
	ItemCount int               `json:"itemCount"`
	Subtotal  float64           `json:"subtotal"`
}

// GetCart returns the user's cart with totals
func (s *CartService) GetCart(ctx context.Context, userID uuid.UUID) (*CartOutput, error) {
	items, err := s.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return buildCartOutput(items), nil
}

// AddToCart adds a product to the user's cart. Adding a product already
// in the cart is a conflict; quantity changes go through UpdateQuantity.
func (s *CartService) AddToCart(ctx context.Context, userID, productID uuid.UUID, quantity int) (*CartOutput, error) {
	if quantity < 1 {
		quantity = 1
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	if product.Stock <= 0 {
		return nil, apperror.NewBadRequestError("Product is out of stock")
	}

	existing, err := s.cartRepo.GetByUserAndProduct(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Product is already in the cart")
	}

	item := &entity.CartItem{
		UserID:    userID,
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Image:     product.Image,
		Quantity:  quantity,
	}
	if err := s.cartRepo.Add(ctx, item); err != nil {
		return nil, err
	}

	return s.GetCart(ctx, userID)
}

// UpdateQuantity sets the quantity of a cart line. Quantity zero removes
// the line.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (*CartOutput, error) {
	if quantity < 0 {
		return nil, apperror.NewBadRequestError("Quantity cannot be negative")
	}

	item, err := s.cartRepo.GetByUserAndProduct(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Cart item")
	}

	if quantity == 0 {
		if err := s.cartRepo.Remove(ctx, userID, productID); err != nil {
			return nil, err
		}
	} else {
		item.Quantity = quantity
		if err := s.cartRepo.Update(ctx, item); err != nil {
			return nil, err
		}
	}

	return s.GetCart(ctx, userID)
}

// RemoveFromCart removes a product from the cart
func (s *CartService) RemoveFromCart(ctx context.Context, userID, productID uuid.UUID) (*CartOutput, error) {
	item, err := s.cartRepo.GetByUserAndProduct(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Cart item")
	}

	if err := s.cartRepo.Remove(ctx, userID, productID); err != nil {
		return nil, err
	}
	return s.GetCart(ctx, userID)
}

// ClearCart empties the user's cart
func (s *CartService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	return s.cartRepo.Clear(ctx, userID)
}

func buildCartOutput(items []entity.CartItem) *CartOutput {
	out := &CartOutput{Items: items}
	if out.Items == nil {
		out.Items = []entity.CartItem{}
	}
	for i := range items {
		out.ItemCount += items[i].Quantity
		out.Subtotal += items[i].LineTotal()
	}
	return out
}
