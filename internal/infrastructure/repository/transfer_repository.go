package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/danuwijaya/tokopos-api/internal/domain/entity"
	domainRepo "github.com/danuwijaya/tokopos-api/internal/domain/repository"
)

type stockTransferRepository struct {
	db *gorm.DB
}

// NewStockTransferRepository creates a new stock transfer repository
func NewStockTransferRepository(db *gorm.DB) domainRepo.StockTransferRepository {
	return &stockTransferRepository{db: db}
}

func (r *stockTransferRepository) Create(ctx context.Context, transfer *entity.StockTransfer) error {
	return r.db.WithContext(ctx).Create(transfer).Error
}

func (r *stockTransferRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.StockTransfer, error) {
	var transfer entity.StockTransfer
	err := r.db.WithContext(ctx).First(&transfer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &transfer, err
}

func (r *stockTransferRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.StockTransfer, error) {
	var transfer entity.StockTransfer
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Preload("Warehouse").
		Preload("Store").
		First(&transfer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &transfer, err
}

func (r *stockTransferRepository) Update(ctx context.Context, transfer *entity.StockTransfer) error {
	return r.db.WithContext(ctx).Save(transfer).Error
}

func (r *stockTransferRepository) List(ctx context.Context, params *domainRepo.TransferFilterParams) ([]entity.StockTransfer, int64, error) {
	var transfers []entity.StockTransfer
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.StockTransfer{})
	if params.WarehouseID != nil {
		query = query.Where("warehouse_id = ?", *params.WarehouseID)
	}
	if params.StoreID != nil {
		query = query.Where("store_id = ?", *params.StoreID)
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Warehouse").
		Preload("Store").
		Order("created_at DESC").
		Find(&transfers).Error

	return transfers, total, err
}

type purchaseOrderRepository struct {
	db *gorm.DB
}

// NewPurchaseOrderRepository creates a new purchase order repository
func NewPurchaseOrderRepository(db *gorm.DB) domainRepo.PurchaseOrderRepository {
	return &purchaseOrderRepository{db: db}
}

func (r *purchaseOrderRepository) Create(ctx context.Context, order *entity.PurchaseOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *purchaseOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrder, error) {
	var order entity.PurchaseOrder
	err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *purchaseOrderRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrder, error) {
	var order entity.PurchaseOrder
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Preload("Supplier").
		Preload("Warehouse").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *purchaseOrderRepository) Update(ctx context.Context, order *entity.PurchaseOrder) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *purchaseOrderRepository) UpdateItem(ctx context.Context, item *entity.PurchaseOrderItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *purchaseOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.PurchaseOrder{}, "id = ?", id).Error
}

func (r *purchaseOrderRepository) List(ctx context.Context, params *domainRepo.PurchaseOrderFilterParams) ([]entity.PurchaseOrder, int64, error) {
	var orders []entity.PurchaseOrder
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.PurchaseOrder{})
	if params.SupplierID != nil {
		query = query.Where("supplier_id = ?", *params.SupplierID)
	}
	if params.WarehouseID != nil {
		query = query.Where("warehouse_id = ?", *params.WarehouseID)
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.Search != "" {
		query = query.Where("order_number ILIKE ?", "%"+params.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Supplier").
		Preload("Warehouse").
		Order("created_at DESC").
		Find(&orders).Error

	return orders, total, err
}
