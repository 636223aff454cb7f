package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StorageLocation is a named slot inside a warehouse (zone, rack, bin).
// Locations nest via ParentID.
type StorageLocation struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	WarehouseID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_warehouse_location_code" json:"warehouse_id"`
	ParentID    *uuid.UUID     `gorm:"type:uuid;index" json:"parent_id,omitempty"`
	Code        string         `gorm:"size:50;not null;uniqueIndex:idx_warehouse_location_code" json:"code"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Kind        string         `gorm:"size:50;default:'bin'" json:"kind"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Warehouse *Warehouse        `gorm:"foreignKey:WarehouseID" json:"warehouse,omitempty"`
	Parent    *StorageLocation  `gorm:"foreignKey:ParentID" json:"parent,omitempty"`
	Children  []StorageLocation `gorm:"foreignKey:ParentID" json:"children,omitempty"`
}

// BeforeCreate generates a UUID before creating a new storage location
func (l *StorageLocation) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StorageLocation model
func (StorageLocation) TableName() string {
	return "storage_locations"
}
