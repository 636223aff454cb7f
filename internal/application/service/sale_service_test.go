package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danuwijaya/tokopos-api/internal/domain/entity"
	"github.com/danuwijaya/tokopos-api/internal/domain/enum"
	"github.com/danuwijaya/tokopos-api/pkg/apperror"
)

type saleServiceFixture struct {
	svc          *SaleService
	saleRepo     *mockSaleRepo
	storeInvRepo *mockStoreInvRepo
	invTxnRepo   *mockInvTxnRepo
	discountRepo *mockDiscountRepo
	customerRepo *mockCustomerRepo

	store   *entity.Store
	product entity.Product
}

func newSaleServiceFixture() *saleServiceFixture {
	store := &entity.Store{ID: uuid.New(), Code: "ST01", Name: "Main Store", IsActive: true}
	product := entity.Product{
		ID:       uuid.New(),
		SKU:      "PRD-1",
		Name:     "Kopi Susu",
		Price:    100000,
		IsActive: true,
	}

	f := &saleServiceFixture{
		saleRepo:     &mockSaleRepo{},
		storeInvRepo: &mockStoreInvRepo{},
		invTxnRepo:   &mockInvTxnRepo{},
		discountRepo: &mockDiscountRepo{},
		customerRepo: &mockCustomerRepo{},
		store:        store,
		product:      product,
	}

	settings := NewSettingsService(&mockSettingsRepo{Values: map[string]string{}})
	f.svc = NewSaleService(
		f.saleRepo,
		&mockProductRepo{Products: map[uuid.UUID]entity.Product{product.ID: product}},
		f.customerRepo,
		&mockStoreRepo{Store: store},
		f.storeInvRepo,
		f.invTxnRepo,
		f.discountRepo,
		settings,
	)
	return f
}

func (f *saleServiceFixture) input() *CreateSaleInput {
	return &CreateSaleInput{
		StoreID: f.store.ID,
		UserID:  uuid.New(),
		Items:   []SaleItemInput{{ProductID: f.product.ID, Quantity: 1}},
		Payments: []SalePaymentInput{
			{Method: enum.PaymentMethodCash, Amount: 111000},
		},
	}
}

func TestCreateSale_RecomputesTotals(t *testing.T) {
	f := newSaleServiceFixture()

	sale, err := f.svc.CreateSale(context.Background(), f.input())

	require.NoError(t, err)
	assert.Equal(t, 100000.0, sale.Subtotal)
	assert.Equal(t, 11000.0, sale.TaxAmount)
	assert.Equal(t, 111000.0, sale.TotalAmount)
	assert.Equal(t, 111000.0, sale.PaidAmount)
	assert.Equal(t, 0.0, sale.ChangeAmount)
	assert.Equal(t, enum.SaleStatusCompleted, sale.Status)
	require.Len(t, sale.Items, 1)
	assert.Equal(t, "Kopi Susu", sale.Items[0].ProductName)
	require.Len(t, sale.Payments, 1)
	assert.Equal(t, enum.PaymentStatusCompleted, sale.Payments[0].Status)
}

func TestCreateSale_DecrementsStockAndWritesLedger(t *testing.T) {
	f := newSaleServiceFixture()
	in := f.input()
	in.Items[0].Quantity = 3
	in.Payments[0].Amount = 400000

	sale, err := f.svc.CreateSale(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, 3, f.storeInvRepo.Decrements[f.product.ID])
	require.Len(t, f.invTxnRepo.Created, 1)
	ledger := f.invTxnRepo.Created[0]
	assert.Equal(t, enum.TransactionTypeOut, ledger.Type)
	assert.Equal(t, -3, ledger.Quantity)
	assert.Equal(t, "sale", ledger.ReferenceType)
	assert.Equal(t, sale.ID, *ledger.ReferenceID)
}

func TestCreateSale_InsufficientTender(t *testing.T) {
	f := newSaleServiceFixture()
	in := f.input()
	in.Payments[0].Amount = 50000

	_, err := f.svc.CreateSale(context.Background(), in)

	assert.ErrorIs(t, err, apperror.ErrInsufficientTender)
	assert.Nil(t, f.saleRepo.CreatedSale)
}

func TestCreateSale_InsufficientStock(t *testing.T) {
	f := newSaleServiceFixture()
	f.storeInvRepo.FailedIDs = []uuid.UUID{f.product.ID}

	_, err := f.svc.CreateSale(context.Background(), f.input())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Kopi Susu")
	assert.Nil(t, f.saleRepo.CreatedSale)
}

func TestCreateSale_CreateFailureRestoresStock(t *testing.T) {
	f := newSaleServiceFixture()
	f.saleRepo.CreateErr = errors.New("db down")

	_, err := f.svc.CreateSale(context.Background(), f.input())

	require.Error(t, err)
	assert.Equal(t, f.storeInvRepo.Decrements, f.storeInvRepo.Restored)
	assert.Empty(t, f.invTxnRepo.Created)
}

func TestCreateSale_PercentageDiscountCapped(t *testing.T) {
	f := newSaleServiceFixture()
	code := "HEMAT10"
	f.discountRepo.Discount = &entity.Discount{
		ID:          uuid.New(),
		Code:        code,
		Type:        enum.DiscountTypePercentage,
		Value:       10,
		MaxDiscount: 4000,
		IsActive:    true,
	}
	in := f.input()
	in.DiscountCode = &code
	in.Payments[0].Amount = 200000

	sale, err := f.svc.CreateSale(context.Background(), in)

	require.NoError(t, err)
	// 10% of 100000 is 10000, capped at 4000
	assert.Equal(t, 4000.0, sale.DiscountAmount)
	assert.Equal(t, 107000.0, sale.TotalAmount)
	assert.Equal(t, 1, f.discountRepo.UsageIncrs)
	require.Len(t, f.discountRepo.RecordedUsages, 1)
	assert.Equal(t, 4000.0, f.discountRepo.RecordedUsages[0].Amount)
}

func TestCreateSale_ExpiredDiscountRejected(t *testing.T) {
	f := newSaleServiceFixture()
	code := "LAMA"
	f.discountRepo.Discount = &entity.Discount{
		ID:       uuid.New(),
		Code:     code,
		Type:     enum.DiscountTypePercentage,
		Value:    10,
		IsActive: false,
	}
	in := f.input()
	in.DiscountCode = &code

	_, err := f.svc.CreateSale(context.Background(), in)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not active")
	assert.Nil(t, f.saleRepo.CreatedSale)
}

func TestCreateSale_MemberRedeemsPoints(t *testing.T) {
	f := newSaleServiceFixture()
	f.customerRepo.Customer = &entity.Customer{
		ID:            uuid.New(),
		Code:          "CUST-1",
		Name:          "Budi",
		IsMember:      true,
		LoyaltyPoints: 100,
	}
	in := f.input()
	in.CustomerID = &f.customerRepo.Customer.ID
	in.RedeemPoints = true
	in.PointsToRedeem = 50
	in.Payments[0].Amount = 106000

	sale, err := f.svc.CreateSale(context.Background(), in)

	require.NoError(t, err)
	// 111000 minus 50 points at 100 each
	assert.Equal(t, 106000.0, sale.TotalAmount)
	assert.Equal(t, 50, sale.PointsRedeemed)
	// floor(111000 / 10000) earned
	assert.Equal(t, 11, sale.PointsEarned)
	require.Len(t, f.customerRepo.AdjustedBy, 1)
	assert.Equal(t, 11-50, f.customerRepo.AdjustedBy[0])
	require.Len(t, f.customerRepo.VisitAmounts, 1)
	assert.Equal(t, 106000.0, f.customerRepo.VisitAmounts[0])
}

func TestCreateSale_RedeemBelowMinimum(t *testing.T) {
	f := newSaleServiceFixture()
	f.customerRepo.Customer = &entity.Customer{
		ID:            uuid.New(),
		IsMember:      true,
		LoyaltyPoints: 100,
	}
	in := f.input()
	in.CustomerID = &f.customerRepo.Customer.ID
	in.RedeemPoints = true
	in.PointsToRedeem = 5

	_, err := f.svc.CreateSale(context.Background(), in)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "At least 10 points")
}

func TestCreateSale_RedeemExceedsBalance(t *testing.T) {
	f := newSaleServiceFixture()
	f.customerRepo.Customer = &entity.Customer{
		ID:            uuid.New(),
		IsMember:      true,
		LoyaltyPoints: 20,
	}
	in := f.input()
	in.CustomerID = &f.customerRepo.Customer.ID
	in.RedeemPoints = true
	in.PointsToRedeem = 30

	_, err := f.svc.CreateSale(context.Background(), in)

	assert.ErrorIs(t, err, apperror.ErrInsufficientPoints)
}

func TestCreateSale_NonMemberCannotRedeem(t *testing.T) {
	f := newSaleServiceFixture()
	f.customerRepo.Customer = &entity.Customer{
		ID:            uuid.New(),
		IsMember:      false,
		LoyaltyPoints: 100,
	}
	in := f.input()
	in.CustomerID = &f.customerRepo.Customer.ID
	in.RedeemPoints = true
	in.PointsToRedeem = 50

	_, err := f.svc.CreateSale(context.Background(), in)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "member")
}

func TestCreateSale_StaleTotalRejected(t *testing.T) {
	f := newSaleServiceFixture()
	in := f.input()
	stale := 100000.0
	in.ExpectedTotal = &stale

	_, err := f.svc.CreateSale(context.Background(), in)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match")
	assert.Nil(t, f.saleRepo.CreatedSale)
}

func TestCreateSale_EmptyItems(t *testing.T) {
	f := newSaleServiceFixture()
	in := f.input()
	in.Items = nil

	_, err := f.svc.CreateSale(context.Background(), in)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one item")
}

func TestCreateSale_UnknownProduct(t *testing.T) {
	f := newSaleServiceFixture()
	in := f.input()
	in.Items[0].ProductID = uuid.New()

	_, err := f.svc.CreateSale(context.Background(), in)

	require.Error(t, err)
	assert.Nil(t, f.saleRepo.CreatedSale)
}

func TestRefundSale_RestoresStockAndReversesPoints(t *testing.T) {
	f := newSaleServiceFixture()
	customerID := uuid.New()
	f.saleRepo.Sale = &entity.Sale{
		ID:             uuid.New(),
		SaleNumber:     "SALE-0001",
		StoreID:        f.store.ID,
		CustomerID:     &customerID,
		Status:         enum.SaleStatusCompleted,
		PointsEarned:   11,
		PointsRedeemed: 50,
		Items: []entity.SaleItem{
			{ProductID: f.product.ID, Quantity: 3},
		},
	}

	sale, err := f.svc.RefundSale(context.Background(), f.saleRepo.Sale.ID, uuid.New())

	require.NoError(t, err)
	assert.Equal(t, enum.SaleStatusRefunded, sale.Status)
	require.NotNil(t, f.saleRepo.Updated)
	assert.Equal(t, 3, f.storeInvRepo.Restored[f.product.ID])
	require.Len(t, f.invTxnRepo.Created, 1)
	ledger := f.invTxnRepo.Created[0]
	assert.Equal(t, enum.TransactionTypeIn, ledger.Type)
	assert.Equal(t, 3, ledger.Quantity)
	assert.Equal(t, "refund", ledger.ReferenceType)
	// Earned points come back out, redeemed points go back on
	require.Len(t, f.customerRepo.AdjustedBy, 1)
	assert.Equal(t, 50-11, f.customerRepo.AdjustedBy[0])
}

func TestRefundSale_RejectsNonCompleted(t *testing.T) {
	f := newSaleServiceFixture()
	f.saleRepo.Sale = &entity.Sale{
		ID:         uuid.New(),
		SaleNumber: "SALE-0002",
		StoreID:    f.store.ID,
		Status:     enum.SaleStatusRefunded,
		Items: []entity.SaleItem{
			{ProductID: f.product.ID, Quantity: 1},
		},
	}

	_, err := f.svc.RefundSale(context.Background(), f.saleRepo.Sale.ID, uuid.New())

	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 422, appErr.Code)
	assert.Nil(t, f.saleRepo.Updated)
	assert.Empty(t, f.storeInvRepo.Restored)
}
