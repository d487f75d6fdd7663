package request

// AddCartItemRequest represents an add-to-cart request
type AddCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// UpdateCartItemRequest represents a quantity change request
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// AddWishlistItemRequest represents an add-to-wishlist request
type AddWishlistItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
}
