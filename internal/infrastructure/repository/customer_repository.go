package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/danuwijaya/tokopos-api/internal/domain/entity"
	domainRepo "github.com/danuwijaya/tokopos-api/internal/domain/repository"
)

// ErrNegativePoints is returned when a point deduction would take the
// balance below zero
var ErrNegativePoints = errors.New("loyalty point balance cannot go negative")

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) domainRepo.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *customerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customer entity.Customer
	err := r.db.WithContext(ctx).First(&customer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &customer, err
}

func (r *customerRepository) GetByCode(ctx context.Context, code string) (*entity.Customer, error) {
	var customer entity.Customer
	err := r.db.WithContext(ctx).First(&customer, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &customer, err
}

func (r *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	return r.db.WithContext(ctx).Save(customer).Error
}

func (r *customerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Customer{}, "id = ?", id).Error
}

func (r *customerRepository) List(ctx context.Context, params *domainRepo.CustomerFilterParams) ([]entity.Customer, int64, error) {
	var customers []entity.Customer
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Customer{})

	if params.Search != "" {
		query = query.Where("name ILIKE ? OR code ILIKE ? OR email ILIKE ? OR phone ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%", "%"+params.Search+"%", "%"+params.Search+"%")
	}
	if params.MembersOnly {
		query = query.Where("is_member = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("name ASC").
		Find(&customers).Error

	return customers, total, err
}

// AdjustLoyaltyPoints applies a signed delta guarded against a
// negative balance. The WHERE clause makes the check and the update
// one atomic statement.
func (r *customerRepository) AdjustLoyaltyPoints(ctx context.Context, id uuid.UUID, delta int) error {
	if delta == 0 {
		return nil
	}

	result := r.db.WithContext(ctx).Model(&entity.Customer{}).
		Where("id = ? AND loyalty_points + ? >= 0", id, delta).
		UpdateColumn("loyalty_points", gorm.Expr("loyalty_points + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNegativePoints
	}
	return nil
}

func (r *customerRepository) RecordVisit(ctx context.Context, id uuid.UUID, amount float64, at time.Time) error {
	return r.db.WithContext(ctx).Model(&entity.Customer{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"total_spent": gorm.Expr("total_spent + ?", amount),
			"last_visit":  at,
		}).Error
}
