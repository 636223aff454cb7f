package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/danuwijaya/tokopos-api/internal/domain/entity"
	"github.com/danuwijaya/tokopos-api/internal/domain/enum"
	"github.com/danuwijaya/tokopos-api/pkg/pagination"
)

// StockTransferRepository defines the interface for stock transfer operations
type StockTransferRepository interface {
	Create(ctx context.Context, transfer *entity.StockTransfer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.StockTransfer, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.StockTransfer, error)
	Update(ctx context.Context, transfer *entity.StockTransfer) error
	List(ctx context.Context, params *TransferFilterParams) ([]entity.StockTransfer, int64, error)
}

// TransferFilterParams contains filtering parameters for transfer queries
type TransferFilterParams struct {
	Pagination  *pagination.PaginationParams
	WarehouseID *uuid.UUID
	StoreID     *uuid.UUID
	Status      *enum.TransferStatus
}

// PurchaseOrderRepository defines the interface for purchase order operations
type PurchaseOrderRepository interface {
	Create(ctx context.Context, order *entity.PurchaseOrder) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrder, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrder, error)
	Update(ctx context.Context, order *entity.PurchaseOrder) error
	UpdateItem(ctx context.Context, item *entity.PurchaseOrderItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *PurchaseOrderFilterParams) ([]entity.PurchaseOrder, int64, error)
}

// PurchaseOrderFilterParams contains filtering parameters for purchase order queries
type PurchaseOrderFilterParams struct {
	Pagination  *pagination.PaginationParams
	SupplierID  *uuid.UUID
	WarehouseID *uuid.UUID
	Status      *enum.PurchaseOrderStatus
	Search      string
}
