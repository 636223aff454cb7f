package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/danuwijaya/tokopos-api/internal/domain/entity"
	"github.com/danuwijaya/tokopos-api/internal/domain/enum"
	"github.com/danuwijaya/tokopos-api/internal/domain/repository"
	infraRepo "github.com/danuwijaya/tokopos-api/internal/infrastructure/repository"
	"github.com/danuwijaya/tokopos-api/pkg/apperror"
	"github.com/danuwijaya/tokopos-api/pkg/pagination"
)

// InventoryService handles warehouse and store stock operations and
// the movement ledger
type InventoryService struct {
	invRepo      repository.InventoryRepository
	storeInvRepo repository.StoreInventoryRepository
	invTxnRepo   repository.InventoryTransactionRepository
	productRepo  repository.ProductRepository
	storeRepo    repository.StoreRepository
	whRepo       repository.WarehouseRepository
}

// NewInventoryService creates a new inventory service
func NewInventoryService(
	invRepo repository.InventoryRepository,
	storeInvRepo repository.StoreInventoryRepository,
	invTxnRepo repository.InventoryTransactionRepository,
	productRepo repository.ProductRepository,
	storeRepo repository.StoreRepository,
	whRepo repository.WarehouseRepository,
) *InventoryService {
	return &InventoryService{
		invRepo:      invRepo,
		storeInvRepo: storeInvRepo,
		invTxnRepo:   invTxnRepo,
		productRepo:  productRepo,
		storeRepo:    storeRepo,
		whRepo:       whRepo,
	}
}

// ListWarehouseInventory lists stock rows for a warehouse
func (s *InventoryService) ListWarehouseInventory(ctx context.Context, warehouseID uuid.UUID, params *pagination.PaginationParams, search string) ([]entity.Inventory, int64, error) {
	warehouse, err := s.whRepo.GetByID(ctx, warehouseID)
	if err != nil {
		return nil, 0, err
	}
	if warehouse == nil {
		return nil, 0, apperror.NewNotFoundError("Warehouse")
	}
	return s.invRepo.ListByWarehouse(ctx, warehouseID, params, search)
}

// ListStoreInventory lists stock rows for a store. This is what the
// POS reads as available stock.
func (s *InventoryService) ListStoreInventory(ctx context.Context, storeID uuid.UUID, params *pagination.PaginationParams, search string) ([]entity.StoreInventory, int64, error) {
	store, err := s.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return nil, 0, err
	}
	if store == nil {
		return nil, 0, apperror.NewNotFoundError("Store")
	}
	return s.storeInvRepo.ListByStore(ctx, storeID, params, search)
}

// AdjustStockInput represents a manual stock adjustment. Exactly one
// of StoreID or WarehouseID must be set.
type AdjustStockInput struct {
	ProductID   uuid.UUID
	StoreID     *uuid.UUID
	WarehouseID *uuid.UUID
	Delta       int
	Notes       *string
	UserID      uuid.UUID
}

// AdjustStock applies a signed manual adjustment and records it in the
// movement ledger
func (s *InventoryService) AdjustStock(ctx context.Context, input *AdjustStockInput) error {
	if input.Delta == 0 {
		return apperror.NewBadRequestError("Adjustment quantity cannot be zero")
	}
	if (input.StoreID == nil) == (input.WarehouseID == nil) {
		return apperror.NewBadRequestError("Exactly one of store_id or warehouse_id is required")
	}

	product, err := s.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}

	if input.StoreID != nil {
		store, err := s.storeRepo.GetByID(ctx, *input.StoreID)
		if err != nil {
			return err
		}
		if store == nil {
			return apperror.NewNotFoundError("Store")
		}
		err = s.storeInvRepo.Adjust(ctx, *input.StoreID, input.ProductID, input.Delta)
		if err != nil {
			if errors.Is(err, infraRepo.ErrInsufficientQuantity) {
				return apperror.ErrInsufficientStock
			}
			return err
		}
	} else {
		warehouse, err := s.whRepo.GetByID(ctx, *input.WarehouseID)
		if err != nil {
			return err
		}
		if warehouse == nil {
			return apperror.NewNotFoundError("Warehouse")
		}
		err = s.invRepo.Adjust(ctx, *input.WarehouseID, input.ProductID, input.Delta)
		if err != nil {
			if errors.Is(err, infraRepo.ErrInsufficientQuantity) {
				return apperror.ErrInsufficientStock
			}
			return err
		}
	}

	return s.invTxnRepo.Create(ctx, &entity.InventoryTransaction{
		Type:          enum.TransactionTypeAdjustment,
		ProductID:     input.ProductID,
		StoreID:       input.StoreID,
		WarehouseID:   input.WarehouseID,
		Quantity:      input.Delta,
		ReferenceType: "adjustment",
		Notes:         input.Notes,
		UserID:        input.UserID,
	})
}

// ListTransactions returns ledger entries newest first using cursor
// pagination
func (s *InventoryService) ListTransactions(ctx context.Context, params *repository.TransactionCursorParams) ([]entity.InventoryTransaction, *pagination.CursorPagination, error) {
	if params.Cursor == nil {
		params.Cursor = pagination.DefaultCursorParams()
	}
	params.Cursor.Validate()

	txns, err := s.invTxnRepo.ListWithCursor(ctx, params)
	if err != nil {
		return nil, nil, err
	}

	cursorInfo, txns := pagination.NewCursorPagination(txns, params.Cursor.Limit,
		func(t entity.InventoryTransaction) string { return t.ID.String() },
		func(t entity.InventoryTransaction) time.Time { return t.CreatedAt },
	)

	return txns, cursorInfo, nil
}

// GetLowStock returns store inventory at or below each product's
// minimum stock, falling back to the given default threshold
func (s *InventoryService) GetLowStock(ctx context.Context, storeID uuid.UUID, threshold int) ([]entity.StoreInventory, error) {
	store, err := s.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, apperror.NewNotFoundError("Store")
	}
	return s.storeInvRepo.GetLowStock(ctx, storeID, threshold)
}
