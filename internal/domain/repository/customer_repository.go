package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/danuwijaya/tokopos-api/internal/domain/entity"
	"github.com/danuwijaya/tokopos-api/pkg/pagination"
)

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	GetByCode(ctx context.Context, code string) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *CustomerFilterParams) ([]entity.Customer, int64, error)
	// AdjustLoyaltyPoints atomically applies a signed delta to the
	// customer's point balance, failing when it would go negative
	AdjustLoyaltyPoints(ctx context.Context, id uuid.UUID, delta int) error
	// RecordVisit adds the sale total to the customer's lifetime spend
	// and stamps the last visit time
	RecordVisit(ctx context.Context, id uuid.UUID, amount float64, at time.Time) error
}

// CustomerFilterParams contains filtering parameters for customer queries
type CustomerFilterParams struct {
	Pagination  *pagination.PaginationParams
	Search      string
	MembersOnly bool
}
