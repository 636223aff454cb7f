package database

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/danuwijaya/tokopos-api/internal/config"
	"github.com/danuwijaya/tokopos-api/internal/domain/entity"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// User-related entities
		&entity.User{},
		&entity.Role{},
		&entity.Permission{},
		&entity.PasswordResetToken{},

		// Catalog entities
		&entity.Category{},
		&entity.Product{},

		// Party entities
		&entity.Customer{},
		&entity.Supplier{},

		// Location entities
		&entity.Store{},
		&entity.Warehouse{},
		&entity.StorageLocation{},

		// Stock entities
		&entity.Inventory{},
		&entity.StoreInventory{},
		&entity.InventoryTransaction{},
		&entity.StockTransfer{},
		&entity.StockTransferItem{},
		&entity.PurchaseOrder{},
		&entity.PurchaseOrderItem{},

		// Selling entities
		&entity.Discount{},
		&entity.DiscountUsage{},
		&entity.Sale{},
		&entity.SaleItem{},
		&entity.SalePayment{},

		// System entities
		&entity.IdempotencyKey{},
		&entity.Setting{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the database with default data (roles, permissions, settings, admin user)
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	// Create default permissions
	permissions := []entity.Permission{
		{Name: "create-sales", GuardName: "web"},
		{Name: "refund-sales", GuardName: "web"},
		{Name: "manage-products", GuardName: "web"},
		{Name: "manage-categories", GuardName: "web"},
		{Name: "manage-customers", GuardName: "web"},
		{Name: "manage-suppliers", GuardName: "web"},
		{Name: "manage-stores", GuardName: "web"},
		{Name: "manage-warehouses", GuardName: "web"},
		{Name: "manage-inventory", GuardName: "web"},
		{Name: "manage-transfers", GuardName: "web"},
		{Name: "manage-purchase-orders", GuardName: "web"},
		{Name: "manage-discounts", GuardName: "web"},
		{Name: "manage-settings", GuardName: "web"},
		{Name: "manage-users", GuardName: "web"},
	}

	for i := range permissions {
		var existing entity.Permission
		if err := db.Where("name = ?", permissions[i].Name).First(&existing).Error; err != nil {
			if err := db.Create(&permissions[i]).Error; err != nil {
				log.Printf("Warning: failed to create permission %s: %v", permissions[i].Name, err)
			}
		}
	}

	// Reload permissions with IDs
	var allPermissions []entity.Permission
	db.Find(&allPermissions)

	pickPermissions := func(names ...string) []entity.Permission {
		var picked []entity.Permission
		for _, name := range names {
			for _, p := range allPermissions {
				if p.Name == name {
					picked = append(picked, p)
					break
				}
			}
		}
		return picked
	}

	// Admin gets everything
	var adminRole entity.Role
	if err := db.Where("name = ?", "admin").First(&adminRole).Error; err != nil {
		adminRole = entity.Role{
			Name:        "admin",
			GuardName:   "web",
			Permissions: allPermissions,
		}
		if err := db.Create(&adminRole).Error; err != nil {
			log.Printf("Warning: failed to create admin role: %v", err)
		}
	}

	// Managers run the floor but do not touch users or global settings
	var managerRole entity.Role
	if err := db.Where("name = ?", "manager").First(&managerRole).Error; err != nil {
		managerRole = entity.Role{
			Name:      "manager",
			GuardName: "web",
			Permissions: pickPermissions(
				"create-sales",
				"refund-sales",
				"manage-products",
				"manage-categories",
				"manage-customers",
				"manage-suppliers",
				"manage-inventory",
				"manage-transfers",
				"manage-purchase-orders",
				"manage-discounts",
			),
		}
		if err := db.Create(&managerRole).Error; err != nil {
			log.Printf("Warning: failed to create manager role: %v", err)
		}
	}

	// Cashiers ring up sales and manage members at the till
	var cashierRole entity.Role
	if err := db.Where("name = ?", "cashier").First(&cashierRole).Error; err != nil {
		cashierRole = entity.Role{
			Name:      "cashier",
			GuardName: "web",
			Permissions: pickPermissions(
				"create-sales",
				"manage-customers",
			),
		}
		if err := db.Create(&cashierRole).Error; err != nil {
			log.Printf("Warning: failed to create cashier role: %v", err)
		}
	}

	seedDefaultSettings(db)

	// Create admin user if configured via environment variables
	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	adminName := viper.GetString("ADMIN_NAME")

	if adminEmail != "" && adminPassword != "" {
		var existingAdmin entity.User
		if err := db.Where("email = ?", adminEmail).First(&existingAdmin).Error; err != nil {
			// Hash the password
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash admin password: %v", err)
			} else {
				var role entity.Role
				if err := db.Where("name = ?", "admin").First(&role).Error; err == nil {
					if adminName == "" {
						adminName = "Admin"
					}
					// Split admin name into first and last name
					firstName := adminName
					lastName := ""
					for i, c := range adminName {
						if c == ' ' {
							firstName = adminName[:i]
							lastName = adminName[i+1:]
							break
						}
					}
					adminUser := entity.User{
						ID:        uuid.New(),
						FirstName: firstName,
						LastName:  lastName,
						Email:     adminEmail,
						Password:  string(hashedPassword),
						Roles:     []entity.Role{role},
					}
					if err := db.Create(&adminUser).Error; err != nil {
						log.Printf("Warning: failed to create admin user: %v", err)
					} else {
						log.Printf("Admin user created: %s", adminEmail)
					}
				}
			}
		} else {
			log.Printf("Admin user already exists: %s", adminEmail)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}

// seedDefaultSettings inserts the POS configuration keys that the
// pricing engine reads, without overwriting existing values
func seedDefaultSettings(db *gorm.DB) {
	defaults := map[string]string{
		entity.SettingStoreName:          "TokoPOS",
		entity.SettingCurrencyCode:       "IDR",
		entity.SettingCurrencySymbol:     "Rp",
		entity.SettingTaxEnabled:         "true",
		entity.SettingTaxRate:            "11",
		entity.SettingLoyaltyPointValue:  "100",
		entity.SettingLoyaltyMinPurchase: "10000",
		entity.SettingLoyaltyMinRedeem:   "10",
		entity.SettingLowStockThreshold:  "10",
		entity.SettingReceiptHeader:      "",
		entity.SettingReceiptFooter:      "Terima kasih!",
	}

	for key, value := range defaults {
		var existing entity.Setting
		if err := db.Where("key = ?", key).First(&existing).Error; err != nil {
			setting := entity.Setting{Key: key, Value: value}
			if err := db.Create(&setting).Error; err != nil {
				log.Printf("Warning: failed to seed setting %s: %v", key, err)
			}
		}
	}
}
