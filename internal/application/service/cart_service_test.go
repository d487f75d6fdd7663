package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trendora/trendora-api/pkg/apperror"
)

func newCartFixture() (*CartService, *fakeCartRepo, *fakeProductRepo, *fakeUserRepo) {
	cartRepo := newFakeCartRepo()
	productRepo := newFakeProductRepo()
	userRepo := newFakeUserRepo()
	return NewCartService(cartRepo, productRepo), cartRepo, productRepo, userRepo
}

func TestAddToCartSnapshotsProduct(t *testing.T) {
	svc, _, productRepo, userRepo := newCartFixture()
	ctx := context.Background()

	user := seedUser(userRepo, "Asha Verma", "asha@example.com")
	product := seedProduct(productRepo, "Denim Jacket", 2999, 10)

	cart, err := svc.AddToCart(ctx, user.ID, product.ID, 2)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)

	line := cart.Items[0]
	assert.Equal(t, "Denim Jacket", line.Name)
	assert.Equal(t, 2999.0, line.Price)
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, 2, cart.ItemCount)
	assert.InDelta(t, 5998, cart.Subtotal, 0.001)

	// a later price change does not rewrite the cart line
	product.Price = 1999
	require.NoError(t, productRepo.Update(ctx, product))

	cart, err = svc.GetCart(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2999.0, cart.Items[0].Price)
}

func TestAddToCartDuplicateConflicts(t *testing.T) {
	svc, _, productRepo, userRepo := newCartFixture()
	ctx := context.Background()

	user := seedUser(userRepo, "Asha Verma", "asha@example.com")
	product := seedProduct(productRepo, "Denim Jacket", 2999, 10)

	_, err := svc.AddToCart(ctx, user.ID, product.ID, 1)
	require.NoError(t, err)

	_, err = svc.AddToCart(ctx, user.ID, product.ID, 1)
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperror.From(err).Code)
}

func TestAddToCartOutOfStock(t *testing.T) {
	svc, _, productRepo, userRepo := newCartFixture()
	ctx := context.Background()

	user := seedUser(userRepo, "Asha Verma", "asha@example.com")
	product := seedProduct(productRepo, "Denim Jacket", 2999, 0)

	_, err := svc.AddToCart(ctx, user.ID, product.ID, 1)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.From(err).Code)
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	svc, _, productRepo, userRepo := newCartFixture()
	ctx := context.Background()

	user := seedUser(userRepo, "Asha Verma", "asha@example.com")
	product := seedProduct(productRepo, "Denim Jacket", 2999, 10)

	_, err := svc.AddToCart(ctx, user.ID, product.ID, 1)
	require.NoError(t, err)

	cart, err := svc.UpdateQuantity(ctx, user.ID, product.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, cart.Items[0].Quantity)

	cart, err = svc.UpdateQuantity(ctx, user.ID, product.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.Subtotal)
}

func TestMoveToCartRemovesWishlistEntry(t *testing.T) {
	cartRepo := newFakeCartRepo()
	productRepo := newFakeProductRepo()
	userRepo := newFakeUserRepo()
	wishlistRepo := newFakeWishlistRepo()

	cartSvc := NewCartService(cartRepo, productRepo)
	svc := NewWishlistService(wishlistRepo, cartSvc, productRepo)
	ctx := context.Background()

	user := seedUser(userRepo, "Asha Verma", "asha@example.com")
	product := seedProduct(productRepo, "Floral Wrap Dress", 2199, 4)

	_, err := svc.AddToWishlist(ctx, user.ID, product.ID)
	require.NoError(t, err)

	cart, err := svc.MoveToCart(ctx, user.ID, product.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, product.ID, cart.Items[0].ProductID)

	wishlist, err := svc.GetWishlist(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, wishlist)
}

func TestMoveToCartWhenAlreadyInCart(t *testing.T) {
	cartRepo := newFakeCartRepo()
	productRepo := newFakeProductRepo()
	userRepo := newFakeUserRepo()
	wishlistRepo := newFakeWishlistRepo()

	cartSvc := NewCartService(cartRepo, productRepo)
	svc := NewWishlistService(wishlistRepo, cartSvc, productRepo)
	ctx := context.Background()

	user := seedUser(userRepo, "Asha Verma", "asha@example.com")
	product := seedProduct(productRepo, "Floral Wrap Dress", 2199, 4)

	_, err := cartSvc.AddToCart(ctx, user.ID, product.ID, 1)
	require.NoError(t, err)
	_, err = svc.AddToWishlist(ctx, user.ID, product.ID)
	require.NoError(t, err)

	cart, err := svc.MoveToCart(ctx, user.ID, product.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)

	wishlist, err := svc.GetWishlist(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, wishlist)
}
