package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/danuwijaya/tokopos-api/internal/domain/entity"
	"github.com/danuwijaya/tokopos-api/pkg/pagination"
)

// DiscountRepository defines the interface for discount data operations
type DiscountRepository interface {
	Create(ctx context.Context, discount *entity.Discount) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Discount, error)
	GetByCode(ctx context.Context, code string) (*entity.Discount, error)
	Update(ctx context.Context, discount *entity.Discount) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string, activeOnly bool) ([]entity.Discount, int64, error)
	// ListActive returns discounts currently usable: active flag set,
	// inside their date window, with overall usage remaining
	ListActive(ctx context.Context, storeID *uuid.UUID) ([]entity.Discount, error)
	// IncrementUsage bumps the discount's usage counter
	IncrementUsage(ctx context.Context, id uuid.UUID) error
	// CountUsageByCustomer returns how many times a customer has used
	// the discount
	CountUsageByCustomer(ctx context.Context, discountID, customerID uuid.UUID) (int64, error)
	CreateUsage(ctx context.Context, usage *entity.DiscountUsage) error
}
