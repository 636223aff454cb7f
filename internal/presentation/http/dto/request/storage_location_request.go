package request

import "github.com/google/uuid"

// CreateStorageLocationRequest represents a storage location creation request
type CreateStorageLocationRequest struct {
	WarehouseID uuid.UUID  `json:"warehouse_id" binding:"required"`
	ParentID    *uuid.UUID `json:"parent_id"`
	Code        string     `json:"code" binding:"required,max=50"`
	Name        string     `json:"name" binding:"required,min=2,max=255"`
	Kind        string     `json:"kind" binding:"omitempty,oneof=zone aisle rack shelf bin"`
}

// UpdateStorageLocationRequest represents a storage location update request
type UpdateStorageLocationRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=2,max=255"`
	Kind     *string `json:"kind" binding:"omitempty,oneof=zone aisle rack shelf bin"`
	IsActive *bool   `json:"is_active"`
}
