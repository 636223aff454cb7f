package request

import (
	"github.com/google/uuid"

	"github.com/danuwijaya/tokopos-api/internal/domain/enum"
)

// SaleItemRequest is one cart line in a sale submission
type SaleItemRequest struct {
	ProductID    uuid.UUID `json:"product_id" binding:"required"`
	Quantity     int       `json:"quantity" binding:"required,gt=0"`
	LineDiscount float64   `json:"line_discount" binding:"min=0"`
}

// SalePaymentRequest is one payment in a sale submission
type SalePaymentRequest struct {
	Method    enum.PaymentMethod `json:"method"`
	Amount    float64            `json:"amount" binding:"required,gt=0"`
	Reference *string            `json:"reference" binding:"omitempty,max=255"`
}

// CreateSaleRequest represents a sale checkout submission
type CreateSaleRequest struct {
	StoreID        uuid.UUID            `json:"store_id" binding:"required"`
	CustomerID     *uuid.UUID           `json:"customer_id"`
	DiscountCode   *string              `json:"discount_code"`
	RedeemPoints   bool                 `json:"redeem_points"`
	PointsToRedeem int                  `json:"points_to_redeem" binding:"min=0"`
	Items          []SaleItemRequest    `json:"items" binding:"required,min=1,dive"`
	Payments       []SalePaymentRequest `json:"payments" binding:"required,min=1,dive"`
	ExpectedTotal  *float64             `json:"expected_total"`
	Notes          *string              `json:"notes"`
}

// SaleFilterRequest represents sale history filter parameters
type SaleFilterRequest struct {
	StoreID    string `form:"store_id"`
	CustomerID string `form:"customer_id"`
	Status     string `form:"status"`
	DateFrom   string `form:"date_from"`
	DateTo     string `form:"date_to"`
	Search     string `form:"search"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}
