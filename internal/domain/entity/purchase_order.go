package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/danuwijaya/tokopos-api/internal/domain/enum"
)

// PurchaseOrder is an order placed with a supplier to replenish
// warehouse stock
type PurchaseOrder struct {
	ID           uuid.UUID                `gorm:"type:uuid;primary_key" json:"id"`
	OrderNumber  string                   `gorm:"size:50;uniqueIndex;not null" json:"order_number"`
	SupplierID   uuid.UUID                `gorm:"type:uuid;not null;index" json:"supplier_id"`
	WarehouseID  uuid.UUID                `gorm:"type:uuid;not null;index" json:"warehouse_id"`
	Status       enum.PurchaseOrderStatus `gorm:"default:0" json:"status"`
	OrderDate    *time.Time               `json:"order_date,omitempty"`
	ExpectedDate *time.Time               `json:"expected_date,omitempty"`
	TotalCost    float64                  `gorm:"default:0" json:"total_cost"`
	Notes        *string                  `gorm:"type:text" json:"notes,omitempty"`
	CreatedBy    uuid.UUID                `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt    time.Time                `json:"created_at"`
	UpdatedAt    time.Time                `json:"updated_at"`
	DeletedAt    gorm.DeletedAt           `gorm:"index" json:"-"`

	// Relationships
	Supplier  *Supplier           `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	Warehouse *Warehouse          `gorm:"foreignKey:WarehouseID" json:"warehouse,omitempty"`
	Items     []PurchaseOrderItem `gorm:"foreignKey:PurchaseOrderID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new purchase order
func (p *PurchaseOrder) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PurchaseOrder model
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// PurchaseOrderItem is one product line on a purchase order.
// ReceivedQuantity accumulates across partial deliveries.
type PurchaseOrderItem struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	PurchaseOrderID  uuid.UUID `gorm:"type:uuid;not null;index" json:"purchase_order_id"`
	ProductID        uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity         int       `gorm:"not null" json:"quantity"`
	ReceivedQuantity int       `gorm:"default:0" json:"received_quantity"`
	UnitCost         float64   `gorm:"not null" json:"unit_cost"`
	CreatedAt        time.Time `json:"created_at"`

	// Relationships
	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// BeforeCreate generates a UUID before creating a new purchase order item
func (i *PurchaseOrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PurchaseOrderItem model
func (PurchaseOrderItem) TableName() string {
	return "purchase_order_items"
}
