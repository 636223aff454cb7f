package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/danuwijaya/tokopos-api/internal/domain/entity"
	"github.com/danuwijaya/tokopos-api/pkg/pagination"
)

// ProductRepository defines the interface for product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	// GetByIDs retrieves multiple products by their IDs in a single query (prevents N+1)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	GetByBarcode(ctx context.Context, barcode string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ProductFilterParams) ([]entity.Product, int64, error)
}

// ProductFilterParams contains filtering parameters for product queries
type ProductFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	CategoryID *uuid.UUID
	IsActive   *bool
	SortBy     string
	SortOrder  string
}

// CategoryRepository defines the interface for category data operations
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Category, int64, error)
}
