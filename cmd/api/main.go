package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/danuwijaya/tokopos-api/internal/application/service"
	"github.com/danuwijaya/tokopos-api/internal/config"
	"github.com/danuwijaya/tokopos-api/internal/infrastructure/database"
	"github.com/danuwijaya/tokopos-api/internal/infrastructure/repository"
	"github.com/danuwijaya/tokopos-api/internal/presentation/http/handler"
	"github.com/danuwijaya/tokopos-api/internal/presentation/http/routes"
	"github.com/danuwijaya/tokopos-api/pkg/email"
	"github.com/danuwijaya/tokopos-api/pkg/oauth"
	"github.com/danuwijaya/tokopos-api/pkg/printer"
	"github.com/danuwijaya/tokopos-api/pkg/utils"
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

	// Seed default data
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
	roleRepo := repository.NewRoleRepository(db)
	permissionRepo := repository.NewPermissionRepository(db)
	passwordResetRepo := repository.NewPasswordResetTokenRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	storeRepo := repository.NewStoreRepository(db)
	warehouseRepo := repository.NewWarehouseRepository(db)
	locationRepo := repository.NewStorageLocationRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	storeInventoryRepo := repository.NewStoreInventoryRepository(db)
	inventoryTxnRepo := repository.NewInventoryTransactionRepository(db)
	transferRepo := repository.NewStockTransferRepository(db)
	purchaseOrderRepo := repository.NewPurchaseOrderRepository(db)
	discountRepo := repository.NewDiscountRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
		FrontendURL:  cfg.Email.FrontendURL,
	})

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:           cfg.OAuth.GoogleClientID,
		ClientSecret:       cfg.OAuth.GoogleClientSecret,
		RedirectURL:        cfg.OAuth.GoogleRedirectURL,
		FrontendSuccessURL: cfg.OAuth.FrontendURL + "/auth/success",
		FrontendErrorURL:   cfg.OAuth.FrontendURL + "/auth/error",
	})

	// Initialize services
	authService := service.NewAuthService(userRepo, roleRepo, passwordResetRepo, jwtManager, emailService, googleOAuthService)
	userService := service.NewUserService(userRepo, roleRepo, permissionRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	productService := service.NewProductService(productRepo, categoryRepo)
	customerService := service.NewCustomerService(customerRepo)
	supplierService := service.NewSupplierService(supplierRepo)
	storeService := service.NewStoreService(storeRepo, warehouseRepo)
	locationService := service.NewStorageLocationService(locationRepo, warehouseRepo)
	discountService := service.NewDiscountService(discountRepo, customerRepo)
	inventoryService := service.NewInventoryService(inventoryRepo, storeInventoryRepo, inventoryTxnRepo, productRepo, storeRepo, warehouseRepo)
	transferService := service.NewTransferService(transferRepo, inventoryRepo, storeInventoryRepo, inventoryTxnRepo, productRepo, storeRepo, warehouseRepo)
	purchaseOrderService := service.NewPurchaseOrderService(purchaseOrderRepo, supplierRepo, warehouseRepo, productRepo, inventoryRepo, inventoryTxnRepo)
	saleService := service.NewSaleService(saleRepo, productRepo, customerRepo, storeRepo, storeInventoryRepo, inventoryTxnRepo, discountRepo, settingsService)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	receiptService := service.NewReceiptService(thermalPrinter, saleRepo, settingsService, cfg.Printer.Type)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:          handler.NewAuthHandler(authService),
		Product:       handler.NewProductHandler(productService),
		Category:      handler.NewCategoryHandler(categoryService),
		Customer:      handler.NewCustomerHandler(customerService),
		Store:         handler.NewStoreHandler(storeService),
		Supplier:      handler.NewSupplierHandler(supplierService),
		Location:      handler.NewStorageLocationHandler(locationService),
		Inventory:     handler.NewInventoryHandler(inventoryService, settingsService),
		Transfer:      handler.NewTransferHandler(transferService),
		PurchaseOrder: handler.NewPurchaseOrderHandler(purchaseOrderService),
		Discount:      handler.NewDiscountHandler(discountService),
		Sale:          handler.NewSaleHandler(saleService),
		Receipt:       handler.NewReceiptHandler(receiptService),
		Settings:      handler.NewSettingsHandler(settingsService),
		User:          handler.NewUserHandler(userService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
