package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/danuwijaya/tokopos-api/internal/domain/enum"
)

// StockTransfer moves stock from a warehouse to a store. Source stock
// is deducted on approval; destination stock arrives on completion.
type StockTransfer struct {
	ID             uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	TransferNumber string              `gorm:"size:50;uniqueIndex;not null" json:"transfer_number"`
	WarehouseID    uuid.UUID           `gorm:"type:uuid;not null;index" json:"warehouse_id"`
	StoreID        uuid.UUID           `gorm:"type:uuid;not null;index" json:"store_id"`
	Status         enum.TransferStatus `gorm:"default:0" json:"status"`
	RequestedBy    uuid.UUID           `gorm:"type:uuid;not null" json:"requested_by"`
	ApprovedBy     *uuid.UUID          `gorm:"type:uuid" json:"approved_by,omitempty"`
	Notes          *string             `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
	DeletedAt      gorm.DeletedAt      `gorm:"index" json:"-"`

	// Relationships
	Warehouse *Warehouse          `gorm:"foreignKey:WarehouseID" json:"warehouse,omitempty"`
	Store     *Store              `gorm:"foreignKey:StoreID" json:"store,omitempty"`
	Items     []StockTransferItem `gorm:"foreignKey:TransferID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new transfer
func (t *StockTransfer) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StockTransfer model
func (StockTransfer) TableName() string {
	return "stock_transfers"
}

// StockTransferItem is one product line on a stock transfer
type StockTransferItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TransferID uuid.UUID `gorm:"type:uuid;not null;index" json:"transfer_id"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	CreatedAt  time.Time `json:"created_at"`

	// Relationships
	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// BeforeCreate generates a UUID before creating a new transfer item
func (i *StockTransferItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StockTransferItem model
func (StockTransferItem) TableName() string {
	return "stock_transfer_items"
}
