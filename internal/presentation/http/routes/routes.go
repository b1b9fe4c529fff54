package routes

import (
	"time"

	"github.com/aquadrill/borewell-api/internal/config"
	"github.com/aquadrill/borewell-api/internal/domain/entity"
	"github.com/aquadrill/borewell-api/internal/presentation/http/handler"
	"github.com/aquadrill/borewell-api/internal/presentation/http/middleware"
	"github.com/aquadrill/borewell-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Customer  *handler.CustomerHandler
	Inventory *handler.InventoryHandler
	Dashboard *handler.DashboardHandler
	Settings  *handler.SettingsHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
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

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleLogin)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Profile
	protected.GET("/profile", h.Auth.Profile)
	protected.PUT("/profile", h.Auth.UpdateProfile)

	// Dashboard
	protected.GET("/dashboard", h.Dashboard.Stats)

	// Customers and their billing artifacts
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.POST("/quote", h.Customer.Quote)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.PUT("/:id/billing", h.Customer.UpdateBilling)
		customers.DELETE("/:id", h.Customer.Delete)
		customers.GET("/:id/invoice", h.Customer.Invoice)
		customers.POST("/:id/invoice/export", h.Customer.ExportInvoice)
		customers.POST("/:id/invoice/send", h.Customer.SendInvoice)
	}

	// Inventory
	inventory := protected.Group("/inventory")
	{
		inventory.GET("", h.Inventory.List)
		inventory.POST("", h.Inventory.Create)
		inventory.GET("/low-stock", h.Inventory.LowStock)
		inventory.GET("/:id", h.Inventory.Get)
		inventory.PUT("/:id", h.Inventory.Update)
		inventory.POST("/:id/restock", h.Inventory.Restock)
		inventory.DELETE("/:id", h.Inventory.Delete)
	}

	// Settings: the bill template is readable by every operator, only
	// admins change it
	settings := protected.Group("/settings")
	{
		settings.GET("/bill-template", h.Settings.GetBillTemplate)
		settings.PUT("/bill-template", middleware.RequireRole(entity.RoleAdmin), h.Settings.UpdateBillTemplate)
	}
}
