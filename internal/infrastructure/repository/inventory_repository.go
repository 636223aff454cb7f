package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/danuwijaya/tokopos-api/internal/domain/entity"
	domainRepo "github.com/danuwijaya/tokopos-api/internal/domain/repository"
	"github.com/danuwijaya/tokopos-api/pkg/pagination"
)

// ErrInsufficientQuantity is returned when a stock deduction would
// take a quantity below zero
var ErrInsufficientQuantity = errors.New("insufficient stock quantity")

type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository creates a new warehouse inventory repository
func NewInventoryRepository(db *gorm.DB) domainRepo.InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) GetByWarehouseAndProduct(ctx context.Context, warehouseID, productID uuid.UUID) (*entity.Inventory, error) {
	var inv entity.Inventory
	err := r.db.WithContext(ctx).
		First(&inv, "warehouse_id = ? AND product_id = ?", warehouseID, productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &inv, err
}

func (r *inventoryRepository) ListByWarehouse(ctx context.Context, warehouseID uuid.UUID, params *pagination.PaginationParams, search string) ([]entity.Inventory, int64, error) {
	var rows []entity.Inventory
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Inventory{}).
		Where("warehouse_id = ?", warehouseID)

	if search != "" {
		query = query.
			Joins("JOIN products ON products.id = inventories.product_id").
			Where("products.name ILIKE ? OR products.sku ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Product").
		Order("inventories.created_at ASC").
		Find(&rows).Error

	return rows, total, err
}

func (r *inventoryRepository) Adjust(ctx context.Context, warehouseID, productID uuid.UUID, delta int) error {
	return adjustQuantity(r.db.WithContext(ctx), &entity.Inventory{}, "warehouse_id", warehouseID, productID, delta, func() interface{} {
		return &entity.Inventory{WarehouseID: warehouseID, ProductID: productID, Quantity: delta}
	})
}

func (r *inventoryRepository) AtomicDecrementBatch(ctx context.Context, warehouseID uuid.UUID, decrements map[uuid.UUID]int) (failedIDs []uuid.UUID, err error) {
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for productID, amount := range decrements {
			result := tx.Model(&entity.Inventory{}).
				Where("warehouse_id = ? AND product_id = ? AND quantity >= ?", warehouseID, productID, amount).
				UpdateColumn("quantity", gorm.Expr("quantity - ?", amount))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				failedIDs = append(failedIDs, productID)
			}
		}
		if len(failedIDs) > 0 {
			// Roll back every decrement in the batch
			return ErrInsufficientQuantity
		}
		return nil
	})

	if errors.Is(err, ErrInsufficientQuantity) {
		return failedIDs, nil
	}
	return nil, err
}

type storeInventoryRepository struct {
	db *gorm.DB
}

// NewStoreInventoryRepository creates a new store inventory repository
func NewStoreInventoryRepository(db *gorm.DB) domainRepo.StoreInventoryRepository {
	return &storeInventoryRepository{db: db}
}

func (r *storeInventoryRepository) GetByStoreAndProduct(ctx context.Context, storeID, productID uuid.UUID) (*entity.StoreInventory, error) {
	var inv entity.StoreInventory
	err := r.db.WithContext(ctx).
		First(&inv, "store_id = ? AND product_id = ?", storeID, productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &inv, err
}

func (r *storeInventoryRepository) ListByStore(ctx context.Context, storeID uuid.UUID, params *pagination.PaginationParams, search string) ([]entity.StoreInventory, int64, error) {
	var rows []entity.StoreInventory
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.StoreInventory{}).
		Where("store_id = ?", storeID)

	if search != "" {
		query = query.
			Joins("JOIN products ON products.id = store_inventories.product_id").
			Where("products.name ILIKE ? OR products.sku ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Product").
		Order("store_inventories.created_at ASC").
		Find(&rows).Error

	return rows, total, err
}

func (r *storeInventoryRepository) Adjust(ctx context.Context, storeID, productID uuid.UUID, delta int) error {
	return adjustQuantity(r.db.WithContext(ctx), &entity.StoreInventory{}, "store_id", storeID, productID, delta, func() interface{} {
		return &entity.StoreInventory{StoreID: storeID, ProductID: productID, Quantity: delta}
	})
}

func (r *storeInventoryRepository) AtomicDecrementBatch(ctx context.Context, storeID uuid.UUID, decrements map[uuid.UUID]int) (failedIDs []uuid.UUID, err error) {
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for productID, amount := range decrements {
			result := tx.Model(&entity.StoreInventory{}).
				Where("store_id = ? AND product_id = ? AND quantity >= ?", storeID, productID, amount).
				UpdateColumn("quantity", gorm.Expr("quantity - ?", amount))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				failedIDs = append(failedIDs, productID)
			}
		}
		if len(failedIDs) > 0 {
			return ErrInsufficientQuantity
		}
		return nil
	})

	if errors.Is(err, ErrInsufficientQuantity) {
		return failedIDs, nil
	}
	return nil, err
}

func (r *storeInventoryRepository) AtomicIncrementBatch(ctx context.Context, storeID uuid.UUID, increments map[uuid.UUID]int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for productID, amount := range increments {
			if err := upsertIncrement(tx, storeID, productID, amount); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *storeInventoryRepository) GetLowStock(ctx context.Context, storeID uuid.UUID, threshold int) ([]entity.StoreInventory, error) {
	var rows []entity.StoreInventory
	err := r.db.WithContext(ctx).
		Joins("JOIN products ON products.id = store_inventories.product_id").
		Where("store_inventories.store_id = ?", storeID).
		Where("store_inventories.quantity <= CASE WHEN products.min_stock > 0 THEN products.min_stock ELSE ? END", threshold).
		Preload("Product").
		Order("store_inventories.quantity ASC").
		Find(&rows).Error
	return rows, err
}

// adjustQuantity applies a signed delta to an inventory row, inserting
// the row on first stock-in. Negative deltas are guarded against going
// below zero.
func adjustQuantity(db *gorm.DB, model interface{}, ownerColumn string, ownerID, productID uuid.UUID, delta int, newRow func() interface{}) error {
	if delta == 0 {
		return nil
	}

	if delta < 0 {
		result := db.Model(model).
			Where(ownerColumn+" = ? AND product_id = ? AND quantity >= ?", ownerID, productID, -delta).
			UpdateColumn("quantity", gorm.Expr("quantity + ?", delta))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrInsufficientQuantity
		}
		return nil
	}

	result := db.Model(model).
		Where(ownerColumn+" = ? AND product_id = ?", ownerID, productID).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return db.Create(newRow()).Error
	}
	return nil
}

func upsertIncrement(tx *gorm.DB, storeID, productID uuid.UUID, amount int) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "store_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"quantity": gorm.Expr("store_inventories.quantity + ?", amount)}),
	}).Create(&entity.StoreInventory{StoreID: storeID, ProductID: productID, Quantity: amount}).Error
}

type inventoryTransactionRepository struct {
	db *gorm.DB
}

// NewInventoryTransactionRepository creates a new transaction ledger repository
func NewInventoryTransactionRepository(db *gorm.DB) domainRepo.InventoryTransactionRepository {
	return &inventoryTransactionRepository{db: db}
}

func (r *inventoryTransactionRepository) Create(ctx context.Context, txn *entity.InventoryTransaction) error {
	return r.db.WithContext(ctx).Create(txn).Error
}

func (r *inventoryTransactionRepository) CreateBatch(ctx context.Context, txns []entity.InventoryTransaction) error {
	if len(txns) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&txns).Error
}

// ListWithCursor returns ledger entries using cursor-based pagination.
// Fetches limit+1 items to detect if there are more results.
func (r *inventoryTransactionRepository) ListWithCursor(ctx context.Context, params *domainRepo.TransactionCursorParams) ([]entity.InventoryTransaction, error) {
	var txns []entity.InventoryTransaction

	params.Cursor.Validate()
	query := r.db.WithContext(ctx).Model(&entity.InventoryTransaction{})

	if params.ProductID != nil {
		query = query.Where("product_id = ?", *params.ProductID)
	}
	if params.StoreID != nil {
		query = query.Where("store_id = ?", *params.StoreID)
	}
	if params.WarehouseID != nil {
		query = query.Where("warehouse_id = ?", *params.WarehouseID)
	}
	if params.Type != nil {
		query = query.Where("type = ?", *params.Type)
	}

	cursor, err := params.Cursor.DecodeCursor()
	if err != nil {
		return nil, err
	}

	if cursor != nil {
		if params.Cursor.Direction == pagination.CursorDirectionNext {
			query = query.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
		} else {
			query = query.Where("(created_at, id) > (?, ?)", cursor.CreatedAt, cursor.ID)
		}
	}

	err = query.Limit(params.Cursor.Limit + 1).
		Preload("Product").
		Order("created_at DESC, id DESC").
		Find(&txns).Error

	return txns, err
}
