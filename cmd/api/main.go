package main

import (
	"log"

	"github.com/aquadrill/borewell-api/internal/application/service"
	"github.com/aquadrill/borewell-api/internal/config"
	"github.com/aquadrill/borewell-api/internal/infrastructure/database"
	"github.com/aquadrill/borewell-api/internal/infrastructure/repository"
	"github.com/aquadrill/borewell-api/internal/presentation/http/handler"
	"github.com/aquadrill/borewell-api/internal/presentation/http/routes"
	"github.com/aquadrill/borewell-api/pkg/messaging"
	"github.com/aquadrill/borewell-api/pkg/oauth"
	"github.com/aquadrill/borewell-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed the admin account, bill template, and starter catalog
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Initialize Google OAuth
	googleOAuth := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:     cfg.OAuth.GoogleClientID,
		ClientSecret: cfg.OAuth.GoogleClientSecret,
		RedirectURL:  cfg.OAuth.GoogleRedirectURL,
	})

	// Outbound invoice channels
	gateways := map[messaging.Channel]messaging.Gateway{
		messaging.ChannelEmail: messaging.NewEmailGateway(messaging.SMTPConfig{
			Host:      cfg.SMTP.Host,
			Port:      cfg.SMTP.Port,
			Username:  cfg.SMTP.Username,
			Password:  cfg.SMTP.Password,
			FromName:  cfg.SMTP.FromName,
			FromEmail: cfg.SMTP.FromEmail,
		}),
	}
	if cfg.Gateway.WhatsAppURL != "" {
		gateways[messaging.ChannelWhatsApp] = messaging.NewHTTPGateway(
			messaging.ChannelWhatsApp, cfg.Gateway.WhatsAppURL, cfg.Gateway.APIKey)
	}
	if cfg.Gateway.SMSURL != "" {
		gateways[messaging.ChannelSMS] = messaging.NewHTTPGateway(
			messaging.ChannelSMS, cfg.Gateway.SMSURL, cfg.Gateway.APIKey)
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, googleOAuth)
	billingService := service.NewBillingService(inventoryRepo, &cfg.Billing)
	customerService := service.NewCustomerService(customerRepo, inventoryRepo, billingService, &cfg.Billing)
	inventoryService := service.NewInventoryService(inventoryRepo)
	invoiceService := service.NewInvoiceService(customerRepo, settingsRepo, gateways, &cfg.Storage, &cfg.Billing)
	dashboardService := service.NewDashboardService(customerRepo, inventoryRepo)
	settingsService := service.NewSettingsService(settingsRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Customer:  handler.NewCustomerHandler(customerService, invoiceService),
		Inventory: handler.NewInventoryHandler(inventoryService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Settings:  handler.NewSettingsHandler(settingsService),
	}

	// Setup router
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	// Start server
	addr := ":" + cfg.App.Port
	log.Printf("Starting %s on %s", cfg.App.Name, addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
