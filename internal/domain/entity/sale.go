package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/danuwijaya/tokopos-api/internal/domain/enum"
)

// Sale represents a completed POS transaction. All monetary amounts
// are Rupiah kept at full precision; rounding happens at display time.
type Sale struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	SaleNumber     string          `gorm:"size:50;uniqueIndex;not null" json:"sale_number"`
	StoreID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"store_id"`
	CustomerID     *uuid.UUID      `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	DiscountID     *uuid.UUID      `gorm:"type:uuid;index" json:"discount_id,omitempty"`
	SaleDate       time.Time       `gorm:"not null;index" json:"sale_date"`
	Subtotal       float64         `gorm:"not null" json:"subtotal"`
	TaxAmount      float64         `gorm:"default:0" json:"tax_amount"`
	DiscountAmount float64         `gorm:"default:0" json:"discount_amount"`
	TotalAmount    float64         `gorm:"not null" json:"total_amount"`
	PaidAmount     float64         `gorm:"not null" json:"paid_amount"`
	ChangeAmount   float64         `gorm:"default:0" json:"change_amount"`
	PointsEarned   int             `gorm:"default:0" json:"points_earned"`
	PointsRedeemed int             `gorm:"default:0" json:"points_redeemed"`
	Status         enum.SaleStatus `gorm:"default:0" json:"status"`
	Notes          *string         `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	DeletedAt      gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Store    *Store        `gorm:"foreignKey:StoreID" json:"store,omitempty"`
	Customer *Customer     `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Cashier  *User         `gorm:"foreignKey:UserID" json:"cashier,omitempty"`
	Discount *Discount     `gorm:"foreignKey:DiscountID" json:"discount,omitempty"`
	Items    []SaleItem    `gorm:"foreignKey:SaleID" json:"items,omitempty"`
	Payments []SalePayment `gorm:"foreignKey:SaleID" json:"payments,omitempty"`
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// SaleItem is one cart line captured at sale time. UnitPrice is the
// price at the moment of sale, not a live product reference.
type SaleItem struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SaleID       uuid.UUID `gorm:"type:uuid;not null;index" json:"sale_id"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	ProductName  string    `gorm:"size:255;not null" json:"product_name"`
	SKU          string    `gorm:"size:100" json:"sku"`
	Quantity     int       `gorm:"not null" json:"quantity"`
	UnitPrice    float64   `gorm:"not null" json:"unit_price"`
	LineDiscount float64   `gorm:"default:0" json:"line_discount"`
	LineTotal    float64   `gorm:"not null" json:"line_total"`
	CreatedAt    time.Time `json:"created_at"`

	// Relationships
	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// BeforeCreate generates a UUID before creating a new sale item
func (i *SaleItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleItem model
func (SaleItem) TableName() string {
	return "sale_items"
}

// SalePayment records how a sale was paid
type SalePayment struct {
	ID        uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	SaleID    uuid.UUID          `gorm:"type:uuid;not null;index" json:"sale_id"`
	Method    enum.PaymentMethod `gorm:"not null" json:"method"`
	Amount    float64            `gorm:"not null" json:"amount"`
	Reference *string            `gorm:"size:255" json:"reference,omitempty"`
	Status    enum.PaymentStatus `gorm:"default:0" json:"status"`
	CreatedAt time.Time          `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new sale payment
func (p *SalePayment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SalePayment model
func (SalePayment) TableName() string {
	return "sale_payments"
}
