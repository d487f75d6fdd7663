package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/trendora/trendora-api/internal/application/service"
	"github.com/trendora/trendora-api/internal/presentation/http/dto/request"
	"github.com/trendora/trendora-api/internal/presentation/http/dto/response"
)

// WishlistHandler handles wishlist HTTP requests
type WishlistHandler struct {
	wishlistService *service.WishlistService
}

// NewWishlistHandler creates a new wishlist handler
func NewWishlistHandler(wishlistService *service.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistService}
}

// Get handles fetching the current user's wishlist
func (h *WishlistHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	items, err := h.wishlistService.GetWishlist(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Wishlist retrieved successfully", gin.H{
		"items": items,
	})
}

// Add handles saving a product for later
func (h *WishlistHandler) Add(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.AddWishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	items, err := h.wishlistService.AddToWishlist(c.Request.Context(), *userID, productID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product added to wishlist", gin.H{
		"items": items,
	})
}

// Remove handles dropping a saved product
func (h *WishlistHandler) Remove(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	productID, ok := parseIDParam(c, "product_id")
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	items, err := h.wishlistService.RemoveFromWishlist(c.Request.Context(), *userID, productID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product removed from wishlist", gin.H{
		"items": items,
	})
}

// MoveToCart handles moving a saved product into the cart
func (h *WishlistHandler) MoveToCart(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	productID, ok := parseIDParam(c, "product_id")
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	cart, err := h.wishlistService.MoveToCart(c.Request.Context(), *userID, productID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product moved to cart", cart)
}
