package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danuwijaya/tokopos-api/internal/domain/entity"
	"github.com/danuwijaya/tokopos-api/internal/domain/enum"
	"github.com/danuwijaya/tokopos-api/internal/domain/repository"
	"github.com/danuwijaya/tokopos-api/internal/pricing"
	"github.com/danuwijaya/tokopos-api/pkg/apperror"
	"github.com/danuwijaya/tokopos-api/pkg/utils"
)

// SaleService handles sale submission and reporting. Totals are always
// recomputed server-side; the client's numbers are only checked, never
// trusted.
type SaleService struct {
	saleRepo        repository.SaleRepository
	productRepo     repository.ProductRepository
	customerRepo    repository.CustomerRepository
	storeRepo       repository.StoreRepository
	storeInvRepo    repository.StoreInventoryRepository
	invTxnRepo      repository.InventoryTransactionRepository
	discountRepo    repository.DiscountRepository
	settingsService *SettingsService
}

// NewSaleService creates a new sale service
func NewSaleService(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	storeRepo repository.StoreRepository,
	storeInvRepo repository.StoreInventoryRepository,
	invTxnRepo repository.InventoryTransactionRepository,
	discountRepo repository.DiscountRepository,
	settingsService *SettingsService,
) *SaleService {
	return &SaleService{
		saleRepo:        saleRepo,
		productRepo:     productRepo,
		customerRepo:    customerRepo,
		storeRepo:       storeRepo,
		storeInvRepo:    storeInvRepo,
		invTxnRepo:      invTxnRepo,
		discountRepo:    discountRepo,
		settingsService: settingsService,
	}
}

// SaleItemInput is one cart line in a sale submission
type SaleItemInput struct {
	ProductID    uuid.UUID
	Quantity     int
	LineDiscount float64
}

// SalePaymentInput is one payment in a sale submission
type SalePaymentInput struct {
	Method    enum.PaymentMethod
	Amount    float64
	Reference *string
}

// CreateSaleInput represents the create sale input
type CreateSaleInput struct {
	StoreID        uuid.UUID
	UserID         uuid.UUID
	CustomerID     *uuid.UUID
	DiscountCode   *string
	RedeemPoints   bool
	PointsToRedeem int
	Items          []SaleItemInput
	Payments       []SalePaymentInput
	// ExpectedTotal is the total the client displayed. When set, a
	// mismatch against the recomputed total rejects the sale so a
	// cashier never charges a stale amount.
	ExpectedTotal *float64
	Notes         *string
}

// CreateSale validates and persists a POS sale: recomputes all totals,
// checks discount and loyalty eligibility, decrements store stock,
// writes ledger entries and applies customer side effects
func (s *SaleService) CreateSale(ctx context.Context, input *CreateSaleInput) (*entity.Sale, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Sale must have at least one item")
	}
	if len(input.Payments) == 0 {
		return nil, apperror.NewBadRequestError("Sale must have at least one payment")
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Item quantity must be greater than zero")
		}
		if item.LineDiscount < 0 {
			return nil, apperror.NewBadRequestError("Line discount cannot be negative")
		}
	}
	for _, payment := range input.Payments {
		if payment.Amount <= 0 {
			return nil, apperror.NewBadRequestError("Payment amount must be greater than zero")
		}
	}

	store, err := s.storeRepo.GetByID(ctx, input.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, apperror.NewNotFoundError("Store")
	}

	cfg, err := s.settingsService.GetPOSConfig(ctx)
	if err != nil {
		return nil, err
	}

	products, err := s.loadSaleProducts(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	// Line totals and subtotal
	var subtotal float64
	saleItems := make([]entity.SaleItem, 0, len(input.Items))
	for _, item := range input.Items {
		product := products[item.ProductID]
		line := pricing.CartLine{
			ProductID:    product.ID,
			Name:         product.Name,
			SKU:          product.SKU,
			Quantity:     item.Quantity,
			UnitPrice:    product.Price,
			LineDiscount: item.LineDiscount,
		}
		lineTotal := line.LineTotal()
		subtotal += lineTotal

		saleItems = append(saleItems, entity.SaleItem{
			ProductID:    product.ID,
			ProductName:  product.Name,
			SKU:          product.SKU,
			Quantity:     item.Quantity,
			UnitPrice:    product.Price,
			LineDiscount: item.LineDiscount,
			LineTotal:    lineTotal,
		})
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

	now := time.Now()

	// Discount resolution
	var discount *entity.Discount
	var discountAmount float64
	if input.DiscountCode != nil && strings.TrimSpace(*input.DiscountCode) != "" {
		discount, err = s.discountRepo.GetByCode(ctx, strings.ToUpper(strings.TrimSpace(*input.DiscountCode)))
		if err != nil {
			return nil, err
		}
		if discount == nil {
			return nil, apperror.NewNotFoundError("Discount")
		}
		if err := checkDiscountEligibility(ctx, s.discountRepo, discount, customer, input.StoreID, subtotal, now); err != nil {
			return nil, err
		}
		discountAmount = pricing.ComputeDiscount(&pricing.DiscountPolicy{
			Type:        discount.Type,
			Value:       discount.Value,
			MinPurchase: discount.MinPurchase,
			MaxDiscount: discount.MaxDiscount,
		}, subtotal)
	}

	// Loyalty redemption
	account := pricing.LoyaltyAccount{}
	if customer != nil {
		account = pricing.LoyaltyAccount{IsMember: customer.IsMember, Points: customer.LoyaltyPoints}
	}

	var taxAmount float64
	if cfg.TaxEnabled {
		taxAmount = subtotal * cfg.TaxRate / 100
	}
	totalBeforePoints := subtotal + taxAmount - discountAmount

	pointsToRedeem := 0
	if input.RedeemPoints {
		if customer == nil || !customer.IsMember {
			return nil, apperror.NewAppError(http.StatusUnprocessableEntity, "Point redemption requires a member customer")
		}
		if input.PointsToRedeem < cfg.LoyaltyMinRedeem {
			return nil, apperror.NewAppError(http.StatusUnprocessableEntity,
				fmt.Sprintf("At least %d points must be redeemed", cfg.LoyaltyMinRedeem))
		}
		maxRedeemable := pricing.MaxRedeemablePoints(account, totalBeforePoints, cfg.LoyaltyPointValue)
		if input.PointsToRedeem > maxRedeemable {
			return nil, apperror.ErrInsufficientPoints
		}
		pointsToRedeem = input.PointsToRedeem
	}

	var tendered float64
	for _, payment := range input.Payments {
		tendered += payment.Amount
	}

	totals := pricing.ComputeTotals(pricing.TotalsInput{
		Subtotal:       subtotal,
		TaxEnabled:     cfg.TaxEnabled,
		TaxRate:        cfg.TaxRate,
		DiscountAmount: discountAmount,
		RedeemPoints:   input.RedeemPoints,
		PointsToRedeem: pointsToRedeem,
		PointValue:     cfg.LoyaltyPointValue,
		TenderedAmount: tendered,
	})

	if input.ExpectedTotal != nil && math.Abs(*input.ExpectedTotal-totals.TotalAmount) > 0.01 {
		return nil, apperror.NewAppError(http.StatusUnprocessableEntity,
			"Submitted total does not match the computed total, please reload the cart")
	}
	if !totals.CanPay() {
		return nil, apperror.ErrInsufficientTender
	}

	pointsEarned := pricing.PointsToEarn(account, totals.TotalBeforePoints, cfg.LoyaltyMinPurchase)

	// Stock decrement before the sale row so an insufficient quantity
	// fails fast with nothing to undo
	decrements := make(map[uuid.UUID]int, len(input.Items))
	for _, item := range input.Items {
		decrements[item.ProductID] += item.Quantity
	}
	failedIDs, err := s.storeInvRepo.AtomicDecrementBatch(ctx, input.StoreID, decrements)
	if err != nil {
		return nil, err
	}
	if len(failedIDs) > 0 {
		names := make([]string, 0, len(failedIDs))
		for _, id := range failedIDs {
			if product, ok := products[id]; ok {
				names = append(names, product.Name)
			}
		}
		return nil, apperror.NewAppError(http.StatusUnprocessableEntity,
			"Insufficient stock for: "+strings.Join(names, ", "))
	}

	sale := &entity.Sale{
		SaleNumber:     utils.GenerateSaleNumber(time.Now()),
		StoreID:        input.StoreID,
		CustomerID:     input.CustomerID,
		UserID:         input.UserID,
		SaleDate:       now,
		Subtotal:       totals.Subtotal,
		TaxAmount:      totals.TaxAmount,
		DiscountAmount: totals.DiscountAmount,
		TotalAmount:    totals.TotalAmount,
		PaidAmount:     tendered,
		ChangeAmount:   totals.ChangeAmount,
		PointsEarned:   pointsEarned,
		PointsRedeemed: pointsToRedeem,
		Status:         enum.SaleStatusCompleted,
		Notes:          input.Notes,
		Items:          saleItems,
	}
	if discount != nil {
		sale.DiscountID = &discount.ID
	}
	for _, payment := range input.Payments {
		sale.Payments = append(sale.Payments, entity.SalePayment{
			Method:    payment.Method,
			Amount:    payment.Amount,
			Reference: payment.Reference,
			Status:    enum.PaymentStatusCompleted,
		})
	}

	if err := s.saleRepo.Create(ctx, sale); err != nil {
		// Put the stock back so a failed insert does not leak a decrement
		if restoreErr := s.storeInvRepo.AtomicIncrementBatch(ctx, input.StoreID, decrements); restoreErr != nil {
			log.Printf("failed to restore stock after sale create error: %v", restoreErr)
		}
		return nil, err
	}

	s.recordSaleSideEffects(ctx, sale, discount, customer, discountAmount)

	return sale, nil
}

// loadSaleProducts fetches all referenced products in one query and
// rejects unknown or inactive ones
func (s *SaleService) loadSaleProducts(ctx context.Context, items []SaleItemInput) (map[uuid.UUID]entity.Product, error) {
	ids := make([]uuid.UUID, 0, len(items))
	seen := make(map[uuid.UUID]bool, len(items))
	for _, item := range items {
		if !seen[item.ProductID] {
			seen[item.ProductID] = true
			ids = append(ids, item.ProductID)
		}
	}

	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]entity.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}
	for _, id := range ids {
		product, ok := byID[id]
		if !ok {
			return nil, apperror.NewNotFoundError("Product")
		}
		if !product.IsActive {
			return nil, apperror.NewAppError(http.StatusUnprocessableEntity,
				fmt.Sprintf("Product %s is not for sale", product.Name))
		}
	}
	return byID, nil
}

// recordSaleSideEffects writes the ledger, discount usage, and
// customer updates for a persisted sale. The sale itself is already
// committed; failures here are logged, not surfaced.
func (s *SaleService) recordSaleSideEffects(ctx context.Context, sale *entity.Sale, discount *entity.Discount, customer *entity.Customer, discountAmount float64) {
	txns := make([]entity.InventoryTransaction, 0, len(sale.Items))
	for _, item := range sale.Items {
		txns = append(txns, entity.InventoryTransaction{
			Type:          enum.TransactionTypeOut,
			ProductID:     item.ProductID,
			StoreID:       &sale.StoreID,
			Quantity:      -item.Quantity,
			ReferenceType: "sale",
			ReferenceID:   &sale.ID,
			UserID:        sale.UserID,
		})
	}
	if err := s.invTxnRepo.CreateBatch(ctx, txns); err != nil {
		log.Printf("failed to write inventory transactions for sale %s: %v", sale.SaleNumber, err)
	}

	if discount != nil {
		if err := s.discountRepo.IncrementUsage(ctx, discount.ID); err != nil {
			log.Printf("failed to increment discount usage for sale %s: %v", sale.SaleNumber, err)
		}
		usage := &entity.DiscountUsage{
			DiscountID: discount.ID,
			SaleID:     sale.ID,
			CustomerID: sale.CustomerID,
			Amount:     discountAmount,
		}
		if err := s.discountRepo.CreateUsage(ctx, usage); err != nil {
			log.Printf("failed to record discount usage for sale %s: %v", sale.SaleNumber, err)
		}
	}

	if customer != nil {
		if err := s.customerRepo.RecordVisit(ctx, customer.ID, sale.TotalAmount, sale.SaleDate); err != nil {
			log.Printf("failed to record customer visit for sale %s: %v", sale.SaleNumber, err)
		}
		pointsDelta := sale.PointsEarned - sale.PointsRedeemed
		if pointsDelta != 0 {
			if err := s.customerRepo.AdjustLoyaltyPoints(ctx, customer.ID, pointsDelta); err != nil {
				log.Printf("failed to adjust loyalty points for sale %s: %v", sale.SaleNumber, err)
			}
		}
	}
}

// RefundSale voids a completed sale: sold quantities return to store
// stock, loyalty effects are reversed, and the sale is marked refunded
func (s *SaleService) RefundSale(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.ErrNotFound
	}
	if sale.Status != enum.SaleStatusCompleted {
		return nil, apperror.NewAppError(http.StatusUnprocessableEntity, "Only completed sales can be refunded")
	}

	increments := make(map[uuid.UUID]int, len(sale.Items))
	for _, item := range sale.Items {
		increments[item.ProductID] += item.Quantity
	}
	if err := s.storeInvRepo.AtomicIncrementBatch(ctx, sale.StoreID, increments); err != nil {
		return nil, err
	}

	sale.Status = enum.SaleStatusRefunded
	if err := s.saleRepo.Update(ctx, sale); err != nil {
		return nil, err
	}

	txns := make([]entity.InventoryTransaction, 0, len(sale.Items))
	for _, item := range sale.Items {
		txns = append(txns, entity.InventoryTransaction{
			Type:          enum.TransactionTypeIn,
			ProductID:     item.ProductID,
			StoreID:       &sale.StoreID,
			Quantity:      item.Quantity,
			ReferenceType: "refund",
			ReferenceID:   &sale.ID,
			UserID:        userID,
		})
	}
	if err := s.invTxnRepo.CreateBatch(ctx, txns); err != nil {
		log.Printf("failed to write inventory transactions for refund of sale %s: %v", sale.SaleNumber, err)
	}

	if sale.CustomerID != nil {
		pointsDelta := sale.PointsRedeemed - sale.PointsEarned
		if pointsDelta != 0 {
			if err := s.customerRepo.AdjustLoyaltyPoints(ctx, *sale.CustomerID, pointsDelta); err != nil {
				log.Printf("failed to reverse loyalty points for sale %s: %v", sale.SaleNumber, err)
			}
		}
	}

	return sale, nil
}

// GetSale retrieves a sale with its items, payments and relations
func (s *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.ErrNotFound
	}
	return sale, nil
}

// GetSaleByNumber retrieves a sale by its sale number
func (s *SaleService) GetSaleByNumber(ctx context.Context, saleNumber string) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetByNumber(ctx, saleNumber)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.ErrNotFound
	}
	return sale, nil
}

// ListSales lists sales with filtering and pagination
func (s *SaleService) ListSales(ctx context.Context, params *repository.SaleFilterParams) ([]entity.Sale, int64, error) {
	return s.saleRepo.List(ctx, params)
}

// SaleStatsResult groups sale aggregates by reporting period
type SaleStatsResult struct {
	Today *repository.SaleStats `json:"today"`
	Week  *repository.SaleStats `json:"week"`
	Month *repository.SaleStats `json:"month"`
}

// GetSaleStats returns today/week/month aggregates, optionally scoped
// to one store
func (s *SaleService) GetSaleStats(ctx context.Context, storeID *uuid.UUID) (*SaleStatsResult, error) {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfWeek := startOfDay.AddDate(0, 0, -int(now.Weekday()))
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	today, err := s.saleRepo.GetStats(ctx, storeID, startOfDay, now)
	if err != nil {
		return nil, err
	}
	week, err := s.saleRepo.GetStats(ctx, storeID, startOfWeek, now)
	if err != nil {
		return nil, err
	}
	month, err := s.saleRepo.GetStats(ctx, storeID, startOfMonth, now)
	if err != nil {
		return nil, err
	}

	return &SaleStatsResult{Today: today, Week: week, Month: month}, nil
}
