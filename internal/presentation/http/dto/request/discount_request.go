package request

import (
	"time"

	"github.com/google/uuid"

	"github.com/danuwijaya/tokopos-api/internal/domain/enum"
)

// CreateDiscountRequest represents a discount creation request
type CreateDiscountRequest struct {
	Code             string                     `json:"code" binding:"required,max=50"`
	Name             string                     `json:"name" binding:"required,min=2,max=255"`
	Description      *string                    `json:"description"`
	Type             enum.DiscountType          `json:"type"`
	Value            float64                    `json:"value" binding:"required,gt=0"`
	MinPurchase      float64                    `json:"min_purchase" binding:"min=0"`
	MaxDiscount      float64                    `json:"max_discount" binding:"min=0"`
	ApplicableTo     enum.DiscountApplicability `json:"applicable_to"`
	CustomerID       *uuid.UUID                 `json:"customer_id"`
	StoreID          *uuid.UUID                 `json:"store_id"`
	UsageLimit       int                        `json:"usage_limit" binding:"min=0"`
	PerCustomerLimit int                        `json:"per_customer_limit" binding:"min=0"`
	StartDate        *time.Time                 `json:"start_date"`
	EndDate          *time.Time                 `json:"end_date"`
	IsActive         bool                       `json:"is_active"`
}

// UpdateDiscountRequest represents a discount update request
type UpdateDiscountRequest struct {
	Name             *string    `json:"name" binding:"omitempty,min=2,max=255"`
	Description      *string    `json:"description"`
	Value            *float64   `json:"value" binding:"omitempty,gt=0"`
	MinPurchase      *float64   `json:"min_purchase" binding:"omitempty,min=0"`
	MaxDiscount      *float64   `json:"max_discount" binding:"omitempty,min=0"`
	UsageLimit       *int       `json:"usage_limit" binding:"omitempty,min=0"`
	PerCustomerLimit *int       `json:"per_customer_limit" binding:"omitempty,min=0"`
	StartDate        *time.Time `json:"start_date"`
	EndDate          *time.Time `json:"end_date"`
	IsActive         *bool      `json:"is_active"`
}

// ValidateDiscountRequest checks a discount code against an in-progress cart
type ValidateDiscountRequest struct {
	Code       string     `json:"code" binding:"required"`
	StoreID    uuid.UUID  `json:"store_id" binding:"required"`
	CustomerID *uuid.UUID `json:"customer_id"`
	Subtotal   float64    `json:"subtotal" binding:"min=0"`
}
