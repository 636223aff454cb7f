package request

import (
	"time"

	"github.com/google/uuid"
)

// PurchaseOrderItemRequest is one line in a purchase order
type PurchaseOrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
	UnitCost  float64   `json:"unit_cost" binding:"min=0"`
}

// CreatePurchaseOrderRequest represents a purchase order creation request
type CreatePurchaseOrderRequest struct {
	SupplierID   uuid.UUID                  `json:"supplier_id" binding:"required"`
	WarehouseID  uuid.UUID                  `json:"warehouse_id" binding:"required"`
	ExpectedDate *time.Time                 `json:"expected_date"`
	Items        []PurchaseOrderItemRequest `json:"items" binding:"required,min=1,dive"`
	Notes        *string                    `json:"notes"`
}

// ReceiveItemRequest is one delivered line in a goods receipt
type ReceiveItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
}

// ReceiveDeliveryRequest records a full or partial delivery
type ReceiveDeliveryRequest struct {
	Items []ReceiveItemRequest `json:"items" binding:"required,min=1,dive"`
}
