package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Setting keys used by the POS and loyalty configuration
const (
	SettingStoreName          = "store_name"
	SettingCurrencyCode       = "currency_code"
	SettingCurrencySymbol     = "currency_symbol"
	SettingTaxEnabled         = "tax_enabled"
	SettingTaxRate            = "tax_rate"
	SettingLoyaltyPointValue  = "loyalty_point_value"
	SettingLoyaltyMinPurchase = "loyalty_min_purchase"
	SettingLoyaltyMinRedeem   = "loyalty_min_redeem"
	SettingLowStockThreshold  = "low_stock_threshold"
	SettingReceiptHeader      = "receipt_header"
	SettingReceiptFooter      = "receipt_footer"
)

// Setting is a key-value configuration row
type Setting struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Key       string    `gorm:"size:100;uniqueIndex;not null" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new setting
func (s *Setting) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Setting model
func (Setting) TableName() string {
	return "settings"
}
