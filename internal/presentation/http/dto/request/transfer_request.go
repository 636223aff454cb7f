package request

import "github.com/google/uuid"

// TransferItemRequest is one line in a stock transfer request
type TransferItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
}

// CreateTransferRequest represents a warehouse-to-store transfer request
type CreateTransferRequest struct {
	WarehouseID uuid.UUID             `json:"warehouse_id" binding:"required"`
	StoreID     uuid.UUID             `json:"store_id" binding:"required"`
	Items       []TransferItemRequest `json:"items" binding:"required,min=1,dive"`
	Notes       *string               `json:"notes"`
}

// UpdateTransferStatusRequest moves a transfer through its lifecycle
type UpdateTransferStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=approved in_transit completed cancelled"`
}
