package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer represents a retail customer, optionally enrolled as a
// loyalty member. LoyaltyPoints is authoritative here; POS clients
// only hold a read-only snapshot.
type Customer struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Code          string         `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	Email         *string        `gorm:"size:255;index" json:"email,omitempty"`
	Phone         *string        `gorm:"size:50" json:"phone,omitempty"`
	Address       *string        `gorm:"type:text" json:"address,omitempty"`
	IsMember      bool           `gorm:"default:false" json:"is_member"`
	LoyaltyPoints int            `gorm:"default:0" json:"loyalty_points"`
	TotalSpent    float64        `gorm:"default:0" json:"total_spent"`
	LastVisit     *time.Time     `json:"last_visit,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Sales []Sale `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
