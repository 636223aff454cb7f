package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/danuwijaya/tokopos-api/internal/domain/enum"
)

// Inventory tracks warehouse-level stock for a product
type Inventory struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	WarehouseID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_warehouse_product" json:"warehouse_id"`
	ProductID   uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_warehouse_product" json:"product_id"`
	LocationID  *uuid.UUID `gorm:"type:uuid;index" json:"location_id,omitempty"`
	Quantity    int        `gorm:"not null;default:0" json:"quantity"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Relationships
	Warehouse *Warehouse       `gorm:"foreignKey:WarehouseID" json:"warehouse,omitempty"`
	Product   *Product         `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Location  *StorageLocation `gorm:"foreignKey:LocationID" json:"location,omitempty"`
}

// BeforeCreate generates a UUID before creating a new inventory row
func (i *Inventory) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Inventory model
func (Inventory) TableName() string {
	return "inventories"
}

// StoreInventory tracks store-level stock for a product. This is the
// quantity the POS screen shows as available stock.
type StoreInventory struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	StoreID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_store_product" json:"store_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_store_product" json:"product_id"`
	Quantity  int       `gorm:"not null;default:0" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Store   *Store   `gorm:"foreignKey:StoreID" json:"store,omitempty"`
	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// BeforeCreate generates a UUID before creating a new store inventory row
func (i *StoreInventory) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StoreInventory model
func (StoreInventory) TableName() string {
	return "store_inventories"
}

// InventoryTransaction is an append-only ledger entry for every stock
// movement. Quantity is signed: negative for stock leaving a location.
type InventoryTransaction struct {
	ID            uuid.UUID                     `gorm:"type:uuid;primary_key" json:"id"`
	Type          enum.InventoryTransactionType `gorm:"not null;index" json:"type"`
	ProductID     uuid.UUID                     `gorm:"type:uuid;not null;index" json:"product_id"`
	StoreID       *uuid.UUID                    `gorm:"type:uuid;index" json:"store_id,omitempty"`
	WarehouseID   *uuid.UUID                    `gorm:"type:uuid;index" json:"warehouse_id,omitempty"`
	Quantity      int                           `gorm:"not null" json:"quantity"`
	ReferenceType string                        `gorm:"size:50;index" json:"reference_type"`
	ReferenceID   *uuid.UUID                    `gorm:"type:uuid;index" json:"reference_id,omitempty"`
	Notes         *string                       `gorm:"type:text" json:"notes,omitempty"`
	UserID        uuid.UUID                     `gorm:"type:uuid;not null" json:"user_id"`
	CreatedAt     time.Time                     `gorm:"index" json:"created_at"`

	// Relationships
	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// BeforeCreate generates a UUID before creating a new transaction
func (t *InventoryTransaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InventoryTransaction model
func (InventoryTransaction) TableName() string {
	return "inventory_transactions"
}
