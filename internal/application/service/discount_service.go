package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danuwijaya/tokopos-api/internal/domain/entity"
	"github.com/danuwijaya/tokopos-api/internal/domain/enum"
	"github.com/danuwijaya/tokopos-api/internal/domain/repository"
	"github.com/danuwijaya/tokopos-api/internal/pricing"
	"github.com/danuwijaya/tokopos-api/pkg/apperror"
	"github.com/danuwijaya/tokopos-api/pkg/pagination"
)

// DiscountService handles discount management and eligibility checks
type DiscountService struct {
	discountRepo repository.DiscountRepository
	customerRepo repository.CustomerRepository
}

// NewDiscountService creates a new discount service
func NewDiscountService(
	discountRepo repository.DiscountRepository,
	customerRepo repository.CustomerRepository,
) *DiscountService {
	return &DiscountService{
		discountRepo: discountRepo,
		customerRepo: customerRepo,
	}
}

// CreateDiscountInput represents the create discount input
type CreateDiscountInput struct {
	Code             string
	Name             string
	Description      *string
	Type             enum.DiscountType
	Value            float64
	MinPurchase      float64
	MaxDiscount      float64
	ApplicableTo     enum.DiscountApplicability
	CustomerID       *uuid.UUID
	StoreID          *uuid.UUID
	UsageLimit       int
	PerCustomerLimit int
	StartDate        *time.Time
	EndDate          *time.Time
	IsActive         bool
}

// CreateDiscount creates a new discount
func (s *DiscountService) CreateDiscount(ctx context.Context, input *CreateDiscountInput) (*entity.Discount, error) {
	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if code == "" {
		return nil, apperror.NewBadRequestError("Discount code is required")
	}
	if input.Value <= 0 {
		return nil, apperror.NewBadRequestError("Discount value must be greater than zero")
	}
	if input.Type == enum.DiscountTypePercentage && input.Value > 100 {
		return nil, apperror.NewBadRequestError("Percentage discount cannot exceed 100")
	}
	if input.ApplicableTo == enum.ApplicableToSpecificCustomer && input.CustomerID == nil {
		return nil, apperror.NewBadRequestError("Customer is required for a customer-specific discount")
	}
	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return nil, apperror.NewBadRequestError("End date must be after start date")
	}

	existing, err := s.discountRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Discount code already exists")
	}

	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
	}

	discount := &entity.Discount{
		Code:             code,
		Name:             input.Name,
		Description:      input.Description,
		Type:             input.Type,
		Value:            input.Value,
		MinPurchase:      input.MinPurchase,
		MaxDiscount:      input.MaxDiscount,
		ApplicableTo:     input.ApplicableTo,
		CustomerID:       input.CustomerID,
		StoreID:          input.StoreID,
		UsageLimit:       input.UsageLimit,
		PerCustomerLimit: input.PerCustomerLimit,
		StartDate:        input.StartDate,
		EndDate:          input.EndDate,
		IsActive:         input.IsActive,
	}

	if err := s.discountRepo.Create(ctx, discount); err != nil {
		return nil, err
	}

	return discount, nil
}

// GetDiscount retrieves a discount by ID
func (s *DiscountService) GetDiscount(ctx context.Context, id uuid.UUID) (*entity.Discount, error) {
	discount, err := s.discountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if discount == nil {
		return nil, apperror.ErrNotFound
	}
	return discount, nil
}

// UpdateDiscountInput represents the update discount input
type UpdateDiscountInput struct {
	Name             *string
	Description      *string
	Value            *float64
	MinPurchase      *float64
	MaxDiscount      *float64
	UsageLimit       *int
	PerCustomerLimit *int
	StartDate        *time.Time
	EndDate          *time.Time
	IsActive         *bool
}

// UpdateDiscount updates an existing discount
func (s *DiscountService) UpdateDiscount(ctx context.Context, id uuid.UUID, input *UpdateDiscountInput) (*entity.Discount, error) {
	discount, err := s.discountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if discount == nil {
		return nil, apperror.ErrNotFound
	}

	if input.Name != nil {
		discount.Name = *input.Name
	}
	if input.Description != nil {
		discount.Description = input.Description
	}
	if input.Value != nil {
		if *input.Value <= 0 {
			return nil, apperror.NewBadRequestError("Discount value must be greater than zero")
		}
		if discount.Type == enum.DiscountTypePercentage && *input.Value > 100 {
			return nil, apperror.NewBadRequestError("Percentage discount cannot exceed 100")
		}
		discount.Value = *input.Value
	}
	if input.MinPurchase != nil {
		discount.MinPurchase = *input.MinPurchase
	}
	if input.MaxDiscount != nil {
		discount.MaxDiscount = *input.MaxDiscount
	}
	if input.UsageLimit != nil {
		discount.UsageLimit = *input.UsageLimit
	}
	if input.PerCustomerLimit != nil {
		discount.PerCustomerLimit = *input.PerCustomerLimit
	}
	if input.StartDate != nil {
		discount.StartDate = input.StartDate
	}
	if input.EndDate != nil {
		discount.EndDate = input.EndDate
	}
	if input.IsActive != nil {
		discount.IsActive = *input.IsActive
	}

	if err := s.discountRepo.Update(ctx, discount); err != nil {
		return nil, err
	}

	return discount, nil
}

// DeleteDiscount deletes a discount
func (s *DiscountService) DeleteDiscount(ctx context.Context, id uuid.UUID) error {
	discount, err := s.discountRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if discount == nil {
		return apperror.ErrNotFound
	}
	return s.discountRepo.Delete(ctx, id)
}

// ListDiscounts lists discounts with pagination
func (s *DiscountService) ListDiscounts(ctx context.Context, params *pagination.PaginationParams, search string, activeOnly bool) ([]entity.Discount, int64, error) {
	return s.discountRepo.List(ctx, params, search, activeOnly)
}

// ListActiveDiscounts lists discounts currently selectable at the POS
func (s *DiscountService) ListActiveDiscounts(ctx context.Context, storeID *uuid.UUID) ([]entity.Discount, error) {
	return s.discountRepo.ListActive(ctx, storeID)
}

// ValidateDiscountInput represents the validate discount input
type ValidateDiscountInput struct {
	Code       string
	StoreID    uuid.UUID
	CustomerID *uuid.UUID
	Subtotal   float64
}

// DiscountValidationResult is the outcome of a successful validation
type DiscountValidationResult struct {
	Discount       *entity.Discount
	DiscountAmount float64
}

// ValidateDiscount checks whether a discount can be applied to the
// given cart and returns the computed discount amount
func (s *DiscountService) ValidateDiscount(ctx context.Context, input *ValidateDiscountInput) (*DiscountValidationResult, error) {
	discount, err := s.discountRepo.GetByCode(ctx, strings.ToUpper(strings.TrimSpace(input.Code)))
	if err != nil {
		return nil, err
	}
	if discount == nil {
		return nil, apperror.NewNotFoundError("Discount")
	}

	var customer *entity.Customer
	if input.CustomerID != nil {
		customer, err = s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
	}

	if err := checkDiscountEligibility(ctx, s.discountRepo, discount, customer, input.StoreID, input.Subtotal, time.Now()); err != nil {
		return nil, err
	}

	amount := pricing.ComputeDiscount(&pricing.DiscountPolicy{
		Type:        discount.Type,
		Value:       discount.Value,
		MinPurchase: discount.MinPurchase,
		MaxDiscount: discount.MaxDiscount,
	}, input.Subtotal)

	return &DiscountValidationResult{
		Discount:       discount,
		DiscountAmount: amount,
	}, nil
}

// checkDiscountEligibility applies the rule set shared by the validate
// endpoint and sale submission
func checkDiscountEligibility(ctx context.Context, discountRepo repository.DiscountRepository, discount *entity.Discount, customer *entity.Customer, storeID uuid.UUID, subtotal float64, at time.Time) error {
	if !discount.IsActive {
		return apperror.NewAppError(http.StatusUnprocessableEntity, "Discount is not active")
	}
	if !discount.IsWithinPeriod(at) {
		return apperror.NewAppError(http.StatusUnprocessableEntity, "Discount is outside its validity period")
	}
	if !discount.HasUsageLeft() {
		return apperror.NewAppError(http.StatusUnprocessableEntity, "Discount usage limit has been reached")
	}
	if discount.StoreID != nil && *discount.StoreID != storeID {
		return apperror.NewAppError(http.StatusUnprocessableEntity, "Discount is not valid at this store")
	}
	if subtotal < discount.MinPurchase {
		return apperror.NewAppError(http.StatusUnprocessableEntity,
			fmt.Sprintf("Minimum purchase of %.0f is required for this discount", discount.MinPurchase))
	}

	switch discount.ApplicableTo {
	case enum.ApplicableToMembers:
		if customer == nil || !customer.IsMember {
			return apperror.NewAppError(http.StatusUnprocessableEntity, "Discount is only valid for members")
		}
	case enum.ApplicableToSpecificCustomer:
		if discount.CustomerID == nil || customer == nil || customer.ID != *discount.CustomerID {
			return apperror.NewAppError(http.StatusUnprocessableEntity, "Discount is not valid for this customer")
		}
	}

	if discount.PerCustomerLimit > 0 && customer != nil {
		count, err := discountRepo.CountUsageByCustomer(ctx, discount.ID, customer.ID)
		if err != nil {
			return err
		}
		if count >= int64(discount.PerCustomerLimit) {
			return apperror.NewAppError(http.StatusUnprocessableEntity, "Discount usage limit for this customer has been reached")
		}
	}

	return nil
}
