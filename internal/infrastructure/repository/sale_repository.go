package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/danuwijaya/tokopos-api/internal/domain/entity"
	"github.com/danuwijaya/tokopos-api/internal/domain/enum"
	domainRepo "github.com/danuwijaya/tokopos-api/internal/domain/repository"
)

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	// Items and payments are created in the same insert via associations
	return r.db.WithContext(ctx).Create(sale).Error
}

func (r *saleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.db.WithContext(ctx).First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Payments").
		Preload("Store").
		Preload("Customer").
		Preload("Cashier").
		Preload("Discount").
		First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) GetByNumber(ctx context.Context, saleNumber string) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.db.WithContext(ctx).First(&sale, "sale_number = ?", saleNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) Update(ctx context.Context, sale *entity.Sale) error {
	return r.db.WithContext(ctx).Save(sale).Error
}

func (r *saleRepository) List(ctx context.Context, params *domainRepo.SaleFilterParams) ([]entity.Sale, int64, error) {
	var sales []entity.Sale
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Sale{})

	if params.StoreID != nil {
		query = query.Where("store_id = ?", *params.StoreID)
	}
	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.DateFrom != nil {
		query = query.Where("sale_date >= ?", *params.DateFrom)
	}
	if params.DateTo != nil {
		query = query.Where("sale_date <= ?", *params.DateTo)
	}
	if params.Search != "" {
		query = query.Where("sale_number ILIKE ?", "%"+params.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Store").
		Preload("Customer").
		Preload("Items").
		Order("sale_date DESC").
		Find(&sales).Error

	return sales, total, err
}

func (r *saleRepository) GetStats(ctx context.Context, storeID *uuid.UUID, from, to time.Time) (*domainRepo.SaleStats, error) {
	var stats domainRepo.SaleStats

	query := r.db.WithContext(ctx).Model(&entity.Sale{}).
		Where("sale_date >= ? AND sale_date <= ?", from, to).
		Where("status = ?", enum.SaleStatusCompleted)
	if storeID != nil {
		query = query.Where("store_id = ?", *storeID)
	}

	err := query.
		Select("COUNT(*) AS count, COALESCE(SUM(total_amount), 0) AS total_revenue, COALESCE(SUM(tax_amount), 0) AS total_tax").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}

	itemQuery := r.db.WithContext(ctx).Model(&entity.SaleItem{}).
		Joins("JOIN sales ON sales.id = sale_items.sale_id").
		Where("sales.sale_date >= ? AND sales.sale_date <= ?", from, to).
		Where("sales.status = ?", enum.SaleStatusCompleted)
	if storeID != nil {
		itemQuery = itemQuery.Where("sales.store_id = ?", *storeID)
	}

	err = itemQuery.
		Select("COALESCE(SUM(sale_items.quantity), 0)").
		Scan(&stats.TotalItems).Error

	return &stats, err
}
