package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/danuwijaya/tokopos-api/internal/domain/entity"
	"github.com/danuwijaya/tokopos-api/internal/domain/repository"
	"github.com/danuwijaya/tokopos-api/pkg/apperror"
	"github.com/danuwijaya/tokopos-api/pkg/pagination"
)

// StoreService handles store and warehouse operations
type StoreService struct {
	storeRepo repository.StoreRepository
	whRepo    repository.WarehouseRepository
}

// NewStoreService creates a new store service
func NewStoreService(storeRepo repository.StoreRepository, whRepo repository.WarehouseRepository) *StoreService {
	return &StoreService{storeRepo: storeRepo, whRepo: whRepo}
}

// StoreInput represents the create/update store input
type StoreInput struct {
	Code     string
	Name     string
	Address  *string
	Phone    *string
	IsActive *bool
}

// CreateStore creates a new store
func (s *StoreService) CreateStore(ctx context.Context, input *StoreInput) (*entity.Store, error) {
	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if code == "" {
		return nil, apperror.NewBadRequestError("Store code is required")
	}

	existing, err := s.storeRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Store code already exists")
	}

	store := &entity.Store{
		Code:     code,
		Name:     input.Name,
		Address:  input.Address,
		Phone:    input.Phone,
		IsActive: true,
	}
	if input.IsActive != nil {
		store.IsActive = *input.IsActive
	}

	if err := s.storeRepo.Create(ctx, store); err != nil {
		return nil, err
	}

	return store, nil
}

// GetStore retrieves a store by ID
func (s *StoreService) GetStore(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	store, err := s.storeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, apperror.NewNotFoundError("Store")
	}
	return store, nil
}

// UpdateStore updates an existing store
func (s *StoreService) UpdateStore(ctx context.Context, id uuid.UUID, input *StoreInput) (*entity.Store, error) {
	store, err := s.storeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, apperror.NewNotFoundError("Store")
	}

	if input.Name != "" {
		store.Name = input.Name
	}
	if input.Address != nil {
		store.Address = input.Address
	}
	if input.Phone != nil {
		store.Phone = input.Phone
	}
	if input.IsActive != nil {
		store.IsActive = *input.IsActive
	}

	if err := s.storeRepo.Update(ctx, store); err != nil {
		return nil, err
	}

	return store, nil
}

// DeleteStore deletes a store
func (s *StoreService) DeleteStore(ctx context.Context, id uuid.UUID) error {
	store, err := s.storeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if store == nil {
		return apperror.NewNotFoundError("Store")
	}
	return s.storeRepo.Delete(ctx, id)
}

// ListStores lists stores with pagination
func (s *StoreService) ListStores(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Store, int64, error) {
	return s.storeRepo.List(ctx, params, search)
}

// WarehouseInput represents the create/update warehouse input
type WarehouseInput struct {
	Code     string
	Name     string
	Address  *string
	Phone    *string
	IsActive *bool
}

// CreateWarehouse creates a new warehouse
func (s *StoreService) CreateWarehouse(ctx context.Context, input *WarehouseInput) (*entity.Warehouse, error) {
	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if code == "" {
		return nil, apperror.NewBadRequestError("Warehouse code is required")
	}

	existing, err := s.whRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Warehouse code already exists")
	}

	warehouse := &entity.Warehouse{
		Code:     code,
		Name:     input.Name,
		Address:  input.Address,
		Phone:    input.Phone,
		IsActive: true,
	}
	if input.IsActive != nil {
		warehouse.IsActive = *input.IsActive
	}

	if err := s.whRepo.Create(ctx, warehouse); err != nil {
		return nil, err
	}

	return warehouse, nil
}

// GetWarehouse retrieves a warehouse by ID
func (s *StoreService) GetWarehouse(ctx context.Context, id uuid.UUID) (*entity.Warehouse, error) {
	warehouse, err := s.whRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, apperror.NewNotFoundError("Warehouse")
	}
	return warehouse, nil
}

// UpdateWarehouse updates an existing warehouse
func (s *StoreService) UpdateWarehouse(ctx context.Context, id uuid.UUID, input *WarehouseInput) (*entity.Warehouse, error) {
	warehouse, err := s.whRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, apperror.NewNotFoundError("Warehouse")
	}

	if input.Name != "" {
		warehouse.Name = input.Name
	}
	if input.Address != nil {
		warehouse.Address = input.Address
	}
	if input.Phone != nil {
		warehouse.Phone = input.Phone
	}
	if input.IsActive != nil {
		warehouse.IsActive = *input.IsActive
	}

	if err := s.whRepo.Update(ctx, warehouse); err != nil {
		return nil, err
	}

	return warehouse, nil
}

// DeleteWarehouse deletes a warehouse
func (s *StoreService) DeleteWarehouse(ctx context.Context, id uuid.UUID) error {
	warehouse, err := s.whRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if warehouse == nil {
		return apperror.NewNotFoundError("Warehouse")
	}
	return s.whRepo.Delete(ctx, id)
}

// ListWarehouses lists warehouses with pagination
func (s *StoreService) ListWarehouses(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Warehouse, int64, error) {
	return s.whRepo.List(ctx, params, search)
}
