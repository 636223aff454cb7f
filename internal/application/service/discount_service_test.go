package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danuwijaya/tokopos-api/internal/domain/entity"
	"github.com/danuwijaya/tokopos-api/internal/domain/enum"
)

func newDiscountService(discountRepo *mockDiscountRepo, customerRepo *mockCustomerRepo) *DiscountService {
	if customerRepo == nil {
		customerRepo = &mockCustomerRepo{}
	}
	return NewDiscountService(discountRepo, customerRepo)
}

func activeDiscount() *entity.Discount {
	return &entity.Discount{
		ID:       uuid.New(),
		Code:     "PROMO",
		Name:     "Promo",
		Type:     enum.DiscountTypePercentage,
		Value:    10,
		IsActive: true,
	}
}

func TestValidateDiscount_Percentage(t *testing.T) {
	repo := &mockDiscountRepo{Discount: activeDiscount()}
	svc := newDiscountService(repo, nil)

	result, err := svc.ValidateDiscount(context.Background(), &ValidateDiscountInput{
		Code:     "PROMO",
		StoreID:  uuid.New(),
		Subtotal: 50000,
	})

	require.NoError(t, err)
	assert.Equal(t, 5000.0, result.DiscountAmount)
}

func TestValidateDiscount_CapAppliesToPercentage(t *testing.T) {
	d := activeDiscount()
	d.MaxDiscount = 4000
	repo := &mockDiscountRepo{Discount: d}
	svc := newDiscountService(repo, nil)

	result, err := svc.ValidateDiscount(context.Background(), &ValidateDiscountInput{
		Code:     "PROMO",
		StoreID:  uuid.New(),
		Subtotal: 50000,
	})

	require.NoError(t, err)
	assert.Equal(t, 4000.0, result.DiscountAmount)
}

func TestValidateDiscount_FixedNotCapped(t *testing.T) {
	d := activeDiscount()
	d.Type = enum.DiscountTypeFixed
	d.Value = 20000
	d.MaxDiscount = 5000
	repo := &mockDiscountRepo{Discount: d}
	svc := newDiscountService(repo, nil)

	result, err := svc.ValidateDiscount(context.Background(), &ValidateDiscountInput{
		Code:     "PROMO",
		StoreID:  uuid.New(),
		Subtotal: 50000,
	})

	require.NoError(t, err)
	assert.Equal(t, 20000.0, result.DiscountAmount)
}

func TestValidateDiscount_UnknownCode(t *testing.T) {
	svc := newDiscountService(&mockDiscountRepo{}, nil)

	_, err := svc.ValidateDiscount(context.Background(), &ValidateDiscountInput{
		Code:     "NOPE",
		StoreID:  uuid.New(),
		Subtotal: 50000,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateDiscount_Inactive(t *testing.T) {
	d := activeDiscount()
	d.IsActive = false
	svc := newDiscountService(&mockDiscountRepo{Discount: d}, nil)

	_, err := svc.ValidateDiscount(context.Background(), &ValidateDiscountInput{
		Code:     "PROMO",
		StoreID:  uuid.New(),
		Subtotal: 50000,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not active")
}

func TestValidateDiscount_OutsidePeriod(t *testing.T) {
	d := activeDiscount()
	past := time.Now().Add(-48 * time.Hour)
	d.EndDate = &past
	svc := newDiscountService(&mockDiscountRepo{Discount: d}, nil)

	_, err := svc.ValidateDiscount(context.Background(), &ValidateDiscountInput{
		Code:     "PROMO",
		StoreID:  uuid.New(),
		Subtotal: 50000,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validity period")
}

func TestValidateDiscount_UsageLimitReached(t *testing.T) {
	d := activeDiscount()
	d.UsageLimit = 5
	d.UsageCount = 5
	svc := newDiscountService(&mockDiscountRepo{Discount: d}, nil)

	_, err := svc.ValidateDiscount(context.Background(), &ValidateDiscountInput{
		Code:     "PROMO",
		StoreID:  uuid.New(),
		Subtotal: 50000,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "usage limit")
}

func TestValidateDiscount_WrongStore(t *testing.T) {
	d := activeDiscount()
	otherStore := uuid.New()
	d.StoreID = &otherStore
	svc := newDiscountService(&mockDiscountRepo{Discount: d}, nil)

	_, err := svc.ValidateDiscount(context.Background(), &ValidateDiscountInput{
		Code:     "PROMO",
		StoreID:  uuid.New(),
		Subtotal: 50000,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "store")
}

func TestValidateDiscount_BelowMinPurchase(t *testing.T) {
	d := activeDiscount()
	d.MinPurchase = 100000
	svc := newDiscountService(&mockDiscountRepo{Discount: d}, nil)

	_, err := svc.ValidateDiscount(context.Background(), &ValidateDiscountInput{
		Code:     "PROMO",
		StoreID:  uuid.New(),
		Subtotal: 50000,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Minimum purchase")
}

func TestValidateDiscount_MembersOnly(t *testing.T) {
	d := activeDiscount()
	d.ApplicableTo = enum.ApplicableToMembers
	customer := &entity.Customer{ID: uuid.New(), IsMember: false}
	svc := newDiscountService(&mockDiscountRepo{Discount: d}, &mockCustomerRepo{Customer: customer})

	_, err := svc.ValidateDiscount(context.Background(), &ValidateDiscountInput{
		Code:       "PROMO",
		StoreID:    uuid.New(),
		CustomerID: &customer.ID,
		Subtotal:   50000,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "members")

	// A walk-in sale with no customer attached fails the same way
	_, err = svc.ValidateDiscount(context.Background(), &ValidateDiscountInput{
		Code:     "PROMO",
		StoreID:  uuid.New(),
		Subtotal: 50000,
	})
	require.Error(t, err)
}

func TestValidateDiscount_SpecificCustomer(t *testing.T) {
	d := activeDiscount()
	d.ApplicableTo = enum.ApplicableToSpecificCustomer
	owner := uuid.New()
	d.CustomerID = &owner
	customer := &entity.Customer{ID: uuid.New(), IsMember: true}
	svc := newDiscountService(&mockDiscountRepo{Discount: d}, &mockCustomerRepo{Customer: customer})

	_, err := svc.ValidateDiscount(context.Background(), &ValidateDiscountInput{
		Code:       "PROMO",
		StoreID:    uuid.New(),
		CustomerID: &customer.ID,
		Subtotal:   50000,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "customer")
}

func TestValidateDiscount_PerCustomerLimit(t *testing.T) {
	d := activeDiscount()
	d.PerCustomerLimit = 2
	customer := &entity.Customer{ID: uuid.New(), IsMember: true}
	repo := &mockDiscountRepo{Discount: d, CustomerUsage: 2}
	svc := newDiscountService(repo, &mockCustomerRepo{Customer: customer})

	_, err := svc.ValidateDiscount(context.Background(), &ValidateDiscountInput{
		Code:       "PROMO",
		StoreID:    uuid.New(),
		CustomerID: &customer.ID,
		Subtotal:   50000,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "usage limit for this customer")
}

func TestCreateDiscount_RejectsDuplicateCode(t *testing.T) {
	d := activeDiscount()
	svc := newDiscountService(&mockDiscountRepo{Discount: d}, nil)

	_, err := svc.CreateDiscount(context.Background(), &CreateDiscountInput{
		Code:  "promo",
		Name:  "Promo",
		Type:  enum.DiscountTypePercentage,
		Value: 10,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestCreateDiscount_PercentageOverHundred(t *testing.T) {
	svc := newDiscountService(&mockDiscountRepo{}, nil)

	_, err := svc.CreateDiscount(context.Background(), &CreateDiscountInput{
		Code:  "BIG",
		Name:  "Big",
		Type:  enum.DiscountTypePercentage,
		Value: 120,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot exceed 100")
}
