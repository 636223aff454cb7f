package request

import "github.com/google/uuid"

// AdjustStockRequest represents a manual stock adjustment request.
// Exactly one of store_id or warehouse_id must be set.
type AdjustStockRequest struct {
	ProductID   uuid.UUID  `json:"product_id" binding:"required"`
	StoreID     *uuid.UUID `json:"store_id"`
	WarehouseID *uuid.UUID `json:"warehouse_id"`
	Delta       int        `json:"delta" binding:"required"`
	Notes       *string    `json:"notes"`
}

// TransactionFilterRequest represents stock ledger filter parameters
type TransactionFilterRequest struct {
	Cursor      string `form:"cursor"`
	Limit       int    `form:"limit"`
	Direction   string `form:"direction"`
	ProductID   string `form:"product_id"`
	StoreID     string `form:"store_id"`
	WarehouseID string `form:"warehouse_id"`
	Type        string `form:"type"`
}
