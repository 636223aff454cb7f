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

// SupplierService handles supplier-related operations
type SupplierService struct {
	supplierRepo repository.SupplierRepository
}

// NewSupplierService creates a new supplier service
func NewSupplierService(supplierRepo repository.SupplierRepository) *SupplierService {
	return &SupplierService{supplierRepo: supplierRepo}
}

// SupplierInput represents the create/update supplier input
type SupplierInput struct {
	Code          string
	Name          string
	ContactPerson *string
	Email         *string
	Phone         *string
	Address       *string
	IsActive      *bool
}

// CreateSupplier creates a new supplier
func (s *SupplierService) CreateSupplier(ctx context.Context, input *SupplierInput) (*entity.Supplier, error) {
	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if code == "" {
		return nil, apperror.NewBadRequestError("Supplier code is required")
	}

	existing, err := s.supplierRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Supplier code already exists")
	}

	supplier := &entity.Supplier{
		Code:          code,
		Name:          input.Name,
		ContactPerson: input.ContactPerson,
		Email:         input.Email,
		Phone:         input.Phone,
		Address:       input.Address,
		IsActive:      true,
	}
	if input.IsActive != nil {
		supplier.IsActive = *input.IsActive
	}

	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, err
	}

	return supplier, nil
}

// GetSupplier retrieves a supplier by ID
func (s *SupplierService) GetSupplier(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}
	return supplier, nil
}

// UpdateSupplier updates an existing supplier
func (s *SupplierService) UpdateSupplier(ctx context.Context, id uuid.UUID, input *SupplierInput) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}

	if input.Name != "" {
		supplier.Name = input.Name
	}
	if input.ContactPerson != nil {
		supplier.ContactPerson = input.ContactPerson
	}
	if input.Email != nil {
		supplier.Email = input.Email
	}
	if input.Phone != nil {
		supplier.Phone = input.Phone
	}
	if input.Address != nil {
		supplier.Address = input.Address
	}
	if input.IsActive != nil {
		supplier.IsActive = *input.IsActive
	}

	if err := s.supplierRepo.Update(ctx, supplier); err != nil {
		return nil, err
	}

	return supplier, nil
}

// DeleteSupplier deletes a supplier
func (s *SupplierService) DeleteSupplier(ctx context.Context, id uuid.UUID) error {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return apperror.NewNotFoundError("Supplier")
	}
	return s.supplierRepo.Delete(ctx, id)
}

// ListSuppliers lists suppliers with pagination
func (s *SupplierService) ListSuppliers(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Supplier, int64, error) {
	return s.supplierRepo.List(ctx, params, search)
}
