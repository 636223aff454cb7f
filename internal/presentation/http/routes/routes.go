package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/danuwijaya/tokopos-api/internal/config"
	domainRepo "github.com/danuwijaya/tokopos-api/internal/domain/repository"
	"github.com/danuwijaya/tokopos-api/internal/presentation/http/handler"
	"github.com/danuwijaya/tokopos-api/internal/presentation/http/middleware"
	"github.com/danuwijaya/tokopos-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth          *handler.AuthHandler
	Product       *handler.ProductHandler
	Category      *handler.CategoryHandler
	Customer      *handler.CustomerHandler
	Store         *handler.StoreHandler
	Supplier      *handler.SupplierHandler
	Location      *handler.StorageLocationHandler
	Inventory     *handler.InventoryHandler
	Transfer      *handler.TransferHandler
	PurchaseOrder *handler.PurchaseOrderHandler
	Discount      *handler.DiscountHandler
	Sale          *handler.SaleHandler
	Receipt       *handler.ReceiptHandler
	Settings      *handler.SettingsHandler
	User          *handler.UserHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
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

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-client rate limiter
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
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
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
		auth.POST("/forgot-password", h.Auth.ForgotPassword)
		auth.POST("/reset-password", h.Auth.ResetPassword)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleAuth)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Settings
	registerSettingsRoutes(protected, h)

	// Products
	registerProductRoutes(protected, h)

	// Categories
	registerCategoryRoutes(protected, h)

	// Customers
	registerCustomerRoutes(protected, h)

	// Stores and warehouses
	registerStoreRoutes(protected, h)

	// Suppliers
	registerSupplierRoutes(protected, h)

	// Storage locations
	registerLocationRoutes(protected, h)

	// Inventory
	registerInventoryRoutes(protected, h)

	// Transfers
	registerTransferRoutes(protected, h)

	// Purchase orders
	registerPurchaseOrderRoutes(protected, h)

	// Discounts
	registerDiscountRoutes(protected, h)

	// Sales
	registerSaleRoutes(protected, h, deps)

	// Receipts
	registerReceiptRoutes(protected, h)

	// Users (Admin)
	registerUserRoutes(protected, h)

	// Roles (Admin)
	registerRoleRoutes(protected, h)

	// Permissions (Admin)
	registerPermissionRoutes(protected, h)
}

func registerSettingsRoutes(protected *gin.RouterGroup, h *Handlers) {
	settings := protected.Group("/settings")
	{
		// Every till needs the POS config to render prices and tax
		settings.GET("/pos", h.Settings.GetPOSConfig)

		manage := settings.Group("")
		manage.Use(middleware.RequirePermission("manage-settings"))
		{
			manage.GET("", h.Settings.GetSettings)
			manage.PUT("", h.Settings.UpdateSettings)
		}
	}
}

func registerProductRoutes(protected *gin.RouterGroup, h *Handlers) {
	products := protected.Group("/products")
	{
		// Lookups are open to any authenticated cashier
		products.GET("", h.Product.List)
		products.GET("/barcode/:barcode", h.Product.GetByBarcode)
		products.GET("/:id", h.Product.Get)

		manage := products.Group("")
		manage.Use(middleware.RequirePermission("manage-products"))
		{
			manage.POST("", h.Product.Create)
			manage.PUT("/:id", h.Product.Update)
			manage.DELETE("/:id", h.Product.Delete)
		}
	}
}

func registerCategoryRoutes(protected *gin.RouterGroup, h *Handlers) {
	categories := protected.Group("/categories")
	{
		categories.GET("", h.Category.List)
		categories.GET("/:id", h.Category.Get)

		manage := categories.Group("")
		manage.Use(middleware.RequirePermission("manage-categories"))
		{
			manage.POST("", h.Category.Create)
			manage.PUT("/:id", h.Category.Update)
			manage.DELETE("/:id", h.Category.Delete)
		}
	}
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	{
		// Cashiers look members up at the till
		customers.GET("", h.Customer.List)
		customers.GET("/code/:code", h.Customer.GetByCode)
		customers.GET("/:id", h.Customer.Get)
		customers.POST("", h.Customer.Create)

		manage := customers.Group("")
		manage.Use(middleware.RequirePermission("manage-customers"))
		{
			manage.PUT("/:id", h.Customer.Update)
			manage.POST("/:id/points", h.Customer.AdjustPoints)
			manage.DELETE("/:id", h.Customer.Delete)
		}
	}
}

func registerStoreRoutes(protected *gin.RouterGroup, h *Handlers) {
	stores := protected.Group("/stores")
	{
		stores.GET("", h.Store.ListStores)
		stores.GET("/:id", h.Store.GetStore)

		manage := stores.Group("")
		manage.Use(middleware.RequirePermission("manage-stores"))
		{
			manage.POST("", h.Store.CreateStore)
			manage.PUT("/:id", h.Store.UpdateStore)
			manage.DELETE("/:id", h.Store.DeleteStore)
		}
	}

	warehouses := protected.Group("/warehouses")
	warehouses.Use(middleware.RequirePermission("manage-warehouses"))
	{
		warehouses.GET("", h.Store.ListWarehouses)
		warehouses.POST("", h.Store.CreateWarehouse)
		warehouses.GET("/:id", h.Store.GetWarehouse)
		warehouses.PUT("/:id", h.Store.UpdateWarehouse)
		warehouses.DELETE("/:id", h.Store.DeleteWarehouse)
	}
}

func registerSupplierRoutes(protected *gin.RouterGroup, h *Handlers) {
	suppliers := protected.Group("/suppliers")
	suppliers.Use(middleware.RequirePermission("manage-suppliers"))
	{
		suppliers.GET("", h.Supplier.List)
		suppliers.POST("", h.Supplier.Create)
		suppliers.GET("/:id", h.Supplier.Get)
		suppliers.PUT("/:id", h.Supplier.Update)
		suppliers.DELETE("/:id", h.Supplier.Delete)
	}
}

func registerLocationRoutes(protected *gin.RouterGroup, h *Handlers) {
	locations := protected.Group("/storage-locations")
	locations.Use(middleware.RequirePermission("manage-warehouses"))
	{
		locations.GET("", h.Location.List)
		locations.POST("", h.Location.Create)
		locations.GET("/:id", h.Location.Get)
		locations.PUT("/:id", h.Location.Update)
		locations.DELETE("/:id", h.Location.Delete)
	}
}

func registerInventoryRoutes(protected *gin.RouterGroup, h *Handlers) {
	inventory := protected.Group("/inventory")
	{
		// POS availability checks
		inventory.GET("/store", h.Inventory.ListStoreInventory)
		inventory.GET("/low-stock", h.Inventory.GetLowStock)

		manage := inventory.Group("")
		manage.Use(middleware.RequirePermission("manage-inventory"))
		{
			manage.GET("/warehouse", h.Inventory.ListWarehouseInventory)
			manage.POST("/adjust", h.Inventory.AdjustStock)
			manage.GET("/transactions", h.Inventory.ListTransactions)
		}
	}
}

func registerTransferRoutes(protected *gin.RouterGroup, h *Handlers) {
	transfers := protected.Group("/transfers")
	transfers.Use(middleware.RequirePermission("manage-transfers"))
	{
		transfers.GET("", h.Transfer.List)
		transfers.POST("", h.Transfer.Create)
		transfers.GET("/:id", h.Transfer.Get)
		transfers.PUT("/:id/status", h.Transfer.UpdateStatus)
	}
}

func registerPurchaseOrderRoutes(protected *gin.RouterGroup, h *Handlers) {
	orders := protected.Group("/purchase-orders")
	orders.Use(middleware.RequirePermission("manage-purchase-orders"))
	{
		orders.GET("", h.PurchaseOrder.List)
		orders.POST("", h.PurchaseOrder.Create)
		orders.GET("/:id", h.PurchaseOrder.Get)
		orders.POST("/:id/place", h.PurchaseOrder.Place)
		orders.POST("/:id/cancel", h.PurchaseOrder.Cancel)
		orders.POST("/:id/receive", h.PurchaseOrder.Receive)
	}
}

func registerDiscountRoutes(protected *gin.RouterGroup, h *Handlers) {
	discounts := protected.Group("/discounts")
	{
		// The till needs to validate codes and show active promos
		discounts.GET("/active", h.Discount.ListActive)
		discounts.POST("/validate", h.Discount.Validate)

		manage := discounts.Group("")
		manage.Use(middleware.RequirePermission("manage-discounts"))
		{
			manage.GET("", h.Discount.List)
			manage.POST("", h.Discount.Create)
			manage.GET("/:id", h.Discount.Get)
			manage.PUT("/:id", h.Discount.Update)
			manage.DELETE("/:id", h.Discount.Delete)
		}
	}
}

func registerSaleRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	sales := protected.Group("/sales")
	sales.Use(middleware.RequirePermission("create-sales"))
	{
		// Checkout uses idempotency middleware so a retried submission
		// can never charge or decrement stock twice
		sales.POST("", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Sale.Create)
		sales.GET("", h.Sale.List)
		sales.GET("/stats", h.Sale.Stats)
		sales.GET("/number/:number", h.Sale.GetByNumber)
		sales.GET("/:id", h.Sale.Get)
		sales.POST("/:id/refund", middleware.RequirePermission("refund-sales"), h.Sale.Refund)
	}
}

func registerReceiptRoutes(protected *gin.RouterGroup, h *Handlers) {
	receipts := protected.Group("/receipts")
	{
		receipts.GET("/printer/status", h.Receipt.Status)
		receipts.POST("/printer/test", h.Receipt.TestPrint)
		receipts.GET("/:id", h.Receipt.Get)
		receipts.POST("/:id/print", h.Receipt.Print)
		receipts.GET("/:id/render", h.Receipt.Render)
	}
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequirePermission("manage-users"))
	{
		users.GET("", h.User.List)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id/roles", h.User.UpdateRoles)
		users.DELETE("/:id", h.User.Delete)
	}
}

func registerRoleRoutes(protected *gin.RouterGroup, h *Handlers) {
	roles := protected.Group("/roles")
	roles.Use(middleware.RequirePermission("manage-users"))
	{
		roles.GET("", h.User.ListRoles)
	}
}

func registerPermissionRoutes(protected *gin.RouterGroup, h *Handlers) {
	permissions := protected.Group("/permissions")
	permissions.Use(middleware.RequirePermission("manage-users"))
	{
		permissions.GET("", h.User.ListPermissions)
	}
}
