package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/danuwijaya/tokopos-api/internal/domain/entity"
	"github.com/danuwijaya/tokopos-api/internal/domain/repository"
	"github.com/danuwijaya/tokopos-api/pkg/apperror"
)

// StorageLocationService handles warehouse storage location operations
type StorageLocationService struct {
	locationRepo repository.StorageLocationRepository
	whRepo       repository.WarehouseRepository
}

// NewStorageLocationService creates a new storage location service
func NewStorageLocationService(
	locationRepo repository.StorageLocationRepository,
	whRepo repository.WarehouseRepository,
) *StorageLocationService {
	return &StorageLocationService{
		locationRepo: locationRepo,
		whRepo:       whRepo,
	}
}

// StorageLocationInput represents the create storage location input
type StorageLocationInput struct {
	WarehouseID uuid.UUID
	ParentID    *uuid.UUID
	Code        string
	Name        string
	Kind        string
}

// CreateLocation creates a new storage location inside a warehouse
func (s *StorageLocationService) CreateLocation(ctx context.Context, input *StorageLocationInput) (*entity.StorageLocation, error) {
	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if code == "" {
		return nil, apperror.NewBadRequestError("Location code is required")
	}

	warehouse, err := s.whRepo.GetByID(ctx, input.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, apperror.NewNotFoundError("Warehouse")
	}

	if input.ParentID != nil {
		parent, err := s.locationRepo.GetByID(ctx, *input.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, apperror.NewNotFoundError("Parent location")
		}
		if parent.WarehouseID != input.WarehouseID {
			return nil, apperror.NewBadRequestError("Parent location belongs to a different warehouse")
		}
	}

	kind := input.Kind
	if kind == "" {
		kind = "bin"
	}

	location := &entity.StorageLocation{
		WarehouseID: input.WarehouseID,
		ParentID:    input.ParentID,
		Code:        code,
		Name:        input.Name,
		Kind:        kind,
		IsActive:    true,
	}

	if err := s.locationRepo.Create(ctx, location); err != nil {
		return nil, err
	}

	return location, nil
}

// GetLocation retrieves a storage location by ID
func (s *StorageLocationService) GetLocation(ctx context.Context, id uuid.UUID) (*entity.StorageLocation, error) {
	location, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, apperror.NewNotFoundError("Storage location")
	}
	return location, nil
}

// UpdateLocationInput represents the update storage location input
type UpdateLocationInput struct {
	Name     *string
	Kind     *string
	IsActive *bool
}

// UpdateLocation updates an existing storage location
func (s *StorageLocationService) UpdateLocation(ctx context.Context, id uuid.UUID, input *UpdateLocationInput) (*entity.StorageLocation, error) {
	location, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, apperror.NewNotFoundError("Storage location")
	}

	if input.Name != nil {
		location.Name = *input.Name
	}
	if input.Kind != nil {
		location.Kind = *input.Kind
	}
	if input.IsActive != nil {
		location.IsActive = *input.IsActive
	}

	if err := s.locationRepo.Update(ctx, location); err != nil {
		return nil, err
	}

	return location, nil
}

// DeleteLocation deletes a storage location. Locations with nested
// children cannot be removed.
func (s *StorageLocationService) DeleteLocation(ctx context.Context, id uuid.UUID) error {
	location, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if location == nil {
		return apperror.NewNotFoundError("Storage location")
	}

	hasChildren, err := s.locationRepo.HasChildren(ctx, id)
	if err != nil {
		return err
	}
	if hasChildren {
		return apperror.NewConflictError("Storage location has nested locations")
	}

	return s.locationRepo.Delete(ctx, id)
}

// ListLocations lists the storage locations of a warehouse
func (s *StorageLocationService) ListLocations(ctx context.Context, warehouseID uuid.UUID) ([]entity.StorageLocation, error) {
	warehouse, err := s.whRepo.GetByID(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, apperror.NewNotFoundError("Warehouse")
	}
	return s.locationRepo.ListByWarehouse(ctx, warehouseID)
}
