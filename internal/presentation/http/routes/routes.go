package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/trendora/trendora-api/internal/config"
	domainRepo "github.com/trendora/trendora-api/internal/domain/repository"
	"github.com/trendora/trendora-api/internal/presentation/http/handler"
	"github.com/trendora/trendora-api/internal/presentation/http/middleware"
	"github.com/trendora/trendora-api/pkg/auth"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Product   *handler.ProductHandler
	Cart      *handler.CartHandler
	Wishlist  *handler.WishlistHandler
	Order     *handler.OrderHandler
	User      *handler.UserHandler
	Dashboard *handler.DashboardHandler
	Analytics *handler.AnalyticsHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *auth.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)
		registerCatalogRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
		authGroup.POST("/refresh", h.Auth.RefreshToken)
		// Google OAuth routes
		authGroup.GET("/google", h.Auth.GoogleAuth)
		authGroup.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

// The catalog is browsable without an account.
func registerCatalogRoutes(v1 *gin.RouterGroup, h *Handlers) {
	products := v1.Group("/products")
	{
		products.GET("", h.Product.List)
		products.GET("/:id", h.Product.Get)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Cart
	cart := protected.Group("/cart")
	{
		cart.GET("", h.Cart.Get)
		cart.POST("/items", h.Cart.Add)
		cart.PUT("/items/:product_id", h.Cart.UpdateQuantity)
		cart.DELETE("/items/:product_id", h.Cart.Remove)
		cart.DELETE("", h.Cart.Clear)
	}

	// Wishlist
	wishlist := protected.Group("/wishlist")
	{
		wishlist.GET("", h.Wishlist.Get)
		wishlist.POST("/items", h.Wishlist.Add)
		wishlist.DELETE("/items/:product_id", h.Wishlist.Remove)
		wishlist.POST("/items/:product_id/move-to-cart", h.Wishlist.MoveToCart)
	}

	// Orders
	orders := protected.Group("/orders")
	{
		// Checkout uses idempotency middleware to prevent duplicate orders
		orders.POST("", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Order.Checkout)
		orders.GET("", h.Order.ListMine)
		orders.GET("/:id", h.Order.Get)
	}

	// Admin routes
	registerAdminRoutes(protected, h)
}

func registerAdminRoutes(protected *gin.RouterGroup, h *Handlers) {
	admin := protected.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/dashboard", h.Dashboard.GetOverview)

		admin.GET("/analytics", h.Analytics.GetReport)
		admin.GET("/analytics/summary", h.Analytics.GetSummary)
		admin.GET("/analytics/revenue-trend", h.Analytics.GetRevenueTrend)
		admin.GET("/analytics/top-products", h.Analytics.GetTopProducts)

		admin.POST("/products", h.Product.Create)
		admin.PUT("/products/:id", h.Product.Update)
		admin.DELETE("/products/:id", h.Product.Delete)

		admin.GET("/orders", h.Order.List)
		admin.PUT("/orders/:id/status", h.Order.UpdateStatus)

		admin.GET("/users", h.User.List)
		admin.POST("/users", h.User.Create)
		admin.GET("/users/:id", h.User.Get)
		admin.PUT("/users/:id/blocked", h.User.SetBlocked)
		admin.PUT("/users/:id/admin", h.User.SetAdmin)
		admin.DELETE("/users/:id", h.User.Delete)
	}
}
