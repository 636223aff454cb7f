package request

// StoreRequest represents a store create or update request
type StoreRequest struct {
	Code     string  `json:"code" binding:"omitempty,max=50"`
	Name     string  `json:"name" binding:"required,min=2,max=255"`
	Address  *string `json:"address"`
	Phone    *string `json:"phone" binding:"omitempty,max=50"`
	IsActive *bool   `json:"is_active"`
}

// WarehouseRequest represents a warehouse create or update request
type WarehouseRequest struct {
	Code     string  `json:"code" binding:"omitempty,max=50"`
	Name     string  `json:"name" binding:"required,min=2,max=255"`
	Address  *string `json:"address"`
	Phone    *string `json:"phone" binding:"omitempty,max=50"`
	IsActive *bool   `json:"is_active"`
}
