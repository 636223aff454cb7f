package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/danuwijaya/tokopos-api/internal/domain/entity"
	"github.com/danuwijaya/tokopos-api/pkg/pagination"
)

// StoreRepository defines the interface for store data operations
type StoreRepository interface {
	Create(ctx context.Context, store *entity.Store) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)
	GetByCode(ctx context.Context, code string) (*entity.Store, error)
	Update(ctx context.Context, store *entity.Store) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Store, int64, error)
}

// WarehouseRepository defines the interface for warehouse data operations
type WarehouseRepository interface {
	Create(ctx context.Context, warehouse *entity.Warehouse) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Warehouse, error)
	GetByCode(ctx context.Context, code string) (*entity.Warehouse, error)
	Update(ctx context.Context, warehouse *entity.Warehouse) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Warehouse, int64, error)
}

// SupplierRepository defines the interface for supplier data operations
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error)
	GetByCode(ctx context.Context, code string) (*entity.Supplier, error)
	Update(ctx context.Context, supplier *entity.Supplier) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Supplier, int64, error)
}

// StorageLocationRepository defines the interface for storage location data operations
type StorageLocationRepository interface {
	Create(ctx context.Context, location *entity.StorageLocation) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.StorageLocation, error)
	Update(ctx context.Context, location *entity.StorageLocation) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByWarehouse(ctx context.Context, warehouseID uuid.UUID) ([]entity.StorageLocation, error)
	// HasChildren reports whether any location nests under the given one
	HasChildren(ctx context.Context, id uuid.UUID) (bool, error)
}
