package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/danuwijaya/tokopos-api/internal/domain/entity"
	"github.com/danuwijaya/tokopos-api/internal/domain/enum"
	"github.com/danuwijaya/tokopos-api/pkg/pagination"
)

// InventoryRepository defines the interface for warehouse stock operations
type InventoryRepository interface {
	GetByWarehouseAndProduct(ctx context.Context, warehouseID, productID uuid.UUID) (*entity.Inventory, error)
	ListByWarehouse(ctx context.Context, warehouseID uuid.UUID, params *pagination.PaginationParams, search string) ([]entity.Inventory, int64, error)
	// Adjust applies a signed quantity delta, creating the row when
	// missing. Negative deltas fail when stock is insufficient.
	Adjust(ctx context.Context, warehouseID, productID uuid.UUID, delta int) error
	// AtomicDecrementBatch decrements stock for multiple products only
	// where sufficient quantity exists. Returns the product IDs that
	// failed; any failure rolls back the whole batch.
	AtomicDecrementBatch(ctx context.Context, warehouseID uuid.UUID, decrements map[uuid.UUID]int) (failedIDs []uuid.UUID, err error)
}

// StoreInventoryRepository defines the interface for store stock operations.
// Store quantities are what the POS reports as available stock.
type StoreInventoryRepository interface {
	GetByStoreAndProduct(ctx context.Context, storeID, productID uuid.UUID) (*entity.StoreInventory, error)
	ListByStore(ctx context.Context, storeID uuid.UUID, params *pagination.PaginationParams, search string) ([]entity.StoreInventory, int64, error)
	Adjust(ctx context.Context, storeID, productID uuid.UUID, delta int) error
	AtomicDecrementBatch(ctx context.Context, storeID uuid.UUID, decrements map[uuid.UUID]int) (failedIDs []uuid.UUID, err error)
	AtomicIncrementBatch(ctx context.Context, storeID uuid.UUID, increments map[uuid.UUID]int) error
	// GetLowStock returns store rows at or below the product's minimum
	// stock, falling back to the given threshold when min stock is 0
	GetLowStock(ctx context.Context, storeID uuid.UUID, threshold int) ([]entity.StoreInventory, error)
}

// InventoryTransactionRepository defines the interface for the stock
// movement ledger. Entries are append-only.
type InventoryTransactionRepository interface {
	Create(ctx context.Context, txn *entity.InventoryTransaction) error
	CreateBatch(ctx context.Context, txns []entity.InventoryTransaction) error
	ListWithCursor(ctx context.Context, params *TransactionCursorParams) ([]entity.InventoryTransaction, error)
}

// TransactionCursorParams contains cursor-based filtering parameters
// for the transaction ledger
type TransactionCursorParams struct {
	Cursor      *pagination.CursorParams
	ProductID   *uuid.UUID
	StoreID     *uuid.UUID
	WarehouseID *uuid.UUID
	Type        *enum.InventoryTransactionType
}
