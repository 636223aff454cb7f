package request

import "github.com/google/uuid"

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	SKU         string     `json:"sku" binding:"omitempty,max=100"`
	Barcode     *string    `json:"barcode" binding:"omitempty,max=100"`
	Name        string     `json:"name" binding:"required,min=2,max=255"`
	Description *string    `json:"description"`
	CategoryID  *uuid.UUID `json:"category_id"`
	Unit        string     `json:"unit" binding:"omitempty,max=50"`
	Price       float64    `json:"price" binding:"min=0"`
	Cost        float64    `json:"cost" binding:"min=0"`
	MinStock    int        `json:"min_stock" binding:"min=0"`
	ImageURL    *string    `json:"image_url"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	Name        *string    `json:"name" binding:"omitempty,min=2,max=255"`
	Barcode     *string    `json:"barcode" binding:"omitempty,max=100"`
	Description *string    `json:"description"`
	CategoryID  *uuid.UUID `json:"category_id"`
	Unit        *string    `json:"unit" binding:"omitempty,max=50"`
	Price       *float64   `json:"price" binding:"omitempty,min=0"`
	Cost        *float64   `json:"cost" binding:"omitempty,min=0"`
	MinStock    *int       `json:"min_stock" binding:"omitempty,min=0"`
	ImageURL    *string    `json:"image_url"`
	IsActive    *bool      `json:"is_active"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search     string `form:"search"`
	CategoryID string `form:"category_id"`
	IsActive   *bool  `form:"is_active"`
	SortBy     string `form:"sort_by"`
	SortOrder  string `form:"sort_order"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}
