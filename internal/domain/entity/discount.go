package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/danuwijaya/tokopos-api/internal/domain/enum"
)

// Discount is a named discount policy selectable at the POS. At most
// one discount is active on a cart at a time.
type Discount struct {
	ID               uuid.UUID                  `gorm:"type:uuid;primary_key" json:"id"`
	Code             string                     `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Name             string                     `gorm:"size:255;not null" json:"name"`
	Description      *string                    `gorm:"type:text" json:"description,omitempty"`
	Type             enum.DiscountType          `gorm:"not null" json:"type"`
	Value            float64                    `gorm:"not null" json:"value"`
	MinPurchase      float64                    `gorm:"default:0" json:"min_purchase"`
	MaxDiscount      float64                    `gorm:"default:0" json:"max_discount"`
	ApplicableTo     enum.DiscountApplicability `gorm:"default:0" json:"applicable_to"`
	CustomerID       *uuid.UUID                 `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	StoreID          *uuid.UUID                 `gorm:"type:uuid;index" json:"store_id,omitempty"`
	UsageLimit       int                        `gorm:"default:0" json:"usage_limit"`
	UsageCount       int                        `gorm:"default:0" json:"usage_count"`
	PerCustomerLimit int                        `gorm:"default:0" json:"per_customer_limit"`
	StartDate        *time.Time                 `json:"start_date,omitempty"`
	EndDate          *time.Time                 `json:"end_date,omitempty"`
	IsActive         bool                       `gorm:"default:true" json:"is_active"`
	CreatedAt        time.Time                  `json:"created_at"`
	UpdatedAt        time.Time                  `json:"updated_at"`
	DeletedAt        gorm.DeletedAt             `gorm:"index" json:"-"`

	// Relationships
	Customer *Customer       `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Store    *Store          `gorm:"foreignKey:StoreID" json:"store,omitempty"`
	Usages   []DiscountUsage `gorm:"foreignKey:DiscountID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new discount
func (d *Discount) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Discount model
func (Discount) TableName() string {
	return "discounts"
}

// IsWithinPeriod reports whether the discount is valid at the given time
func (d *Discount) IsWithinPeriod(at time.Time) bool {
	if d.StartDate != nil && at.Before(*d.StartDate) {
		return false
	}
	if d.EndDate != nil && at.After(*d.EndDate) {
		return false
	}
	return true
}

// HasUsageLeft reports whether the overall usage limit allows another use
func (d *Discount) HasUsageLeft() bool {
	return d.UsageLimit == 0 || d.UsageCount < d.UsageLimit
}

// DiscountUsage records one application of a discount to a sale
type DiscountUsage struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	DiscountID uuid.UUID  `gorm:"type:uuid;not null;index" json:"discount_id"`
	SaleID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"sale_id"`
	CustomerID *uuid.UUID `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	Amount     float64    `gorm:"not null" json:"amount"`
	CreatedAt  time.Time  `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new discount usage
func (u *DiscountUsage) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the DiscountUsage model
func (DiscountUsage) TableName() string {
	return "discount_usages"
}
