package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/danuwijaya/tokopos-api/internal/domain/entity"
	domainRepo "github.com/danuwijaya/tokopos-api/internal/domain/repository"
	"github.com/danuwijaya/tokopos-api/pkg/pagination"
)

type discountRepository struct {
	db *gorm.DB
}

// NewDiscountRepository creates a new discount repository
func NewDiscountRepository(db *gorm.DB) domainRepo.DiscountRepository {
	return &discountRepository{db: db}
}

func (r *discountRepository) Create(ctx context.Context, discount *entity.Discount) error {
	return r.db.WithContext(ctx).Create(discount).Error
}

func (r *discountRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Discount, error) {
	var discount entity.Discount
	err := r.db.WithContext(ctx).First(&discount, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &discount, err
}

func (r *discountRepository) GetByCode(ctx context.Context, code string) (*entity.Discount, error) {
	var discount entity.Discount
	err := r.db.WithContext(ctx).First(&discount, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &discount, err
}

func (r *discountRepository) Update(ctx context.Context, discount *entity.Discount) error {
	return r.db.WithContext(ctx).Save(discount).Error
}

func (r *discountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Discount{}, "id = ?", id).Error
}

func (r *discountRepository) List(ctx context.Context, params *pagination.PaginationParams, search string, activeOnly bool) ([]entity.Discount, int64, error) {
	var discounts []entity.Discount
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Discount{})
	if search != "" {
		query = query.Where("name ILIKE ? OR code ILIKE ?", "%"+search+"%", "%"+search+"%")
	}
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("created_at DESC").
		Find(&discounts).Error

	return discounts, total, err
}

func (r *discountRepository) ListActive(ctx context.Context, storeID *uuid.UUID) ([]entity.Discount, error) {
	var discounts []entity.Discount

	now := time.Now()
	query := r.db.WithContext(ctx).Model(&entity.Discount{}).
		Where("is_active = ?", true).
		Where("start_date IS NULL OR start_date <= ?", now).
		Where("end_date IS NULL OR end_date >= ?", now).
		Where("usage_limit = 0 OR usage_count < usage_limit")
	if storeID != nil {
		query = query.Where("store_id IS NULL OR store_id = ?", *storeID)
	}

	err := query.Order("name ASC").Find(&discounts).Error
	return discounts, err
}

func (r *discountRepository) IncrementUsage(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&entity.Discount{}).
		Where("id = ?", id).
		UpdateColumn("usage_count", gorm.Expr("usage_count + 1")).Error
}

func (r *discountRepository) CountUsageByCustomer(ctx context.Context, discountID, customerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.DiscountUsage{}).
		Where("discount_id = ? AND customer_id = ?", discountID, customerID).
		Count(&count).Error
	return count, err
}

func (r *discountRepository) CreateUsage(ctx context.Context, usage *entity.DiscountUsage) error {
	return r.db.WithContext(ctx).Create(usage).Error
}
