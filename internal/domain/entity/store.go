package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store represents a retail storefront with its own POS terminals and
// its own stock levels
type Store struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Code      string         `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Address   *string        `gorm:"type:text" json:"address,omitempty"`
	Phone     *string        `gorm:"size:50" json:"phone,omitempty"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Inventory []StoreInventory `gorm:"foreignKey:StoreID" json:"-"`
	Sales     []Sale           `gorm:"foreignKey:StoreID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new store
func (s *Store) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Store model
func (Store) TableName() string {
	return "stores"
}

// Warehouse represents a stock-holding location feeding stores via
// stock transfers
type Warehouse struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Code      string         `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Address   *string        `gorm:"type:text" json:"address,omitempty"`
	Phone     *string        `gorm:"size:50" json:"phone,omitempty"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Inventory []Inventory       `gorm:"foreignKey:WarehouseID" json:"-"`
	Locations []StorageLocation `gorm:"foreignKey:WarehouseID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new warehouse
func (w *Warehouse) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Warehouse model
func (Warehouse) TableName() string {
	return "warehouses"
}
