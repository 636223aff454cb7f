package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/danuwijaya/tokopos-api/internal/domain/entity"
	"github.com/danuwijaya/tokopos-api/internal/domain/repository"
	infraRepo "github.com/danuwijaya/tokopos-api/internal/infrastructure/repository"
	"github.com/danuwijaya/tokopos-api/pkg/apperror"
	"github.com/danuwijaya/tokopos-api/pkg/utils"
)

// CustomerService handles customer-related operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	Code     string
	Name     string
	Email    *string
	Phone    *string
	Address  *string
	IsMember bool
}

// CreateCustomer creates a new customer
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	code := input.Code
	if code == "" {
		code = utils.GenerateCustomerCode()
	}

	existing, err := s.customerRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Customer code already exists")
	}

	customer := &entity.Customer{
		Code:     code,
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Address:  input.Address,
		IsMember: input.IsMember,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// GetCustomerByCode retrieves a customer by their membership code
func (s *CustomerService) GetCustomerByCode(ctx context.Context, code string) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// UpdateCustomerInput represents the update customer input
type UpdateCustomerInput struct {
	Name     *string
	Email    *string
	Phone    *string
	Address  *string
	IsMember *bool
}

// UpdateCustomer updates an existing customer
func (s *CustomerService) UpdateCustomer(ctx context.Context, id uuid.UUID, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Email != nil {
		customer.Email = input.Email
	}
	if input.Phone != nil {
		customer.Phone = input.Phone
	}
	if input.Address != nil {
		customer.Address = input.Address
	}
	if input.IsMember != nil {
		customer.IsMember = *input.IsMember
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// DeleteCustomer deletes a customer
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}
	return s.customerRepo.Delete(ctx, id)
}

// ListCustomers lists customers with filtering and pagination
func (s *CustomerService) ListCustomers(ctx context.Context, params *repository.CustomerFilterParams) ([]entity.Customer, int64, error) {
	return s.customerRepo.List(ctx, params)
}

// AdjustLoyaltyPoints manually adjusts a customer's loyalty balance,
// for corrections at the counter
func (s *CustomerService) AdjustLoyaltyPoints(ctx context.Context, id uuid.UUID, delta int) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	if !customer.IsMember {
		return nil, apperror.NewBadRequestError("Customer is not a loyalty member")
	}

	if err := s.customerRepo.AdjustLoyaltyPoints(ctx, id, delta); err != nil {
		if errors.Is(err, infraRepo.ErrNegativePoints) {
			return nil, apperror.ErrInsufficientPoints
		}
		return nil, err
	}

	return s.customerRepo.GetByID(ctx, id)
}
