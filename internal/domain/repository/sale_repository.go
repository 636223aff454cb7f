package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/danuwijaya/tokopos-api/internal/domain/entity"
	"github.com/danuwijaya/tokopos-api/internal/domain/enum"
	"github.com/danuwijaya/tokopos-api/pkg/pagination"
)

// SaleRepository defines the interface for sale data operations
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	// GetWithDetails loads a sale with items, payments, store, cashier
	// and customer for receipt rendering
	GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	GetByNumber(ctx context.Context, saleNumber string) (*entity.Sale, error)
	Update(ctx context.Context, sale *entity.Sale) error
	List(ctx context.Context, params *SaleFilterParams) ([]entity.Sale, int64, error)
	GetStats(ctx context.Context, storeID *uuid.UUID, from, to time.Time) (*SaleStats, error)
}

// SaleFilterParams contains filtering parameters for sale queries
type SaleFilterParams struct {
	Pagination *pagination.PaginationParams
	StoreID    *uuid.UUID
	CustomerID *uuid.UUID
	Status     *enum.SaleStatus
	DateFrom   *time.Time
	DateTo     *time.Time
	Search     string
}

// SaleStats aggregates sale totals over a period
type SaleStats struct {
	Count        int64   `json:"count"`
	TotalRevenue float64 `json:"total_revenue"`
	TotalTax     float64 `json:"total_tax"`
	TotalItems   int64   `json:"total_items"`
}
