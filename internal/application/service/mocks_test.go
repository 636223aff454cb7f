package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/danuwijaya/tokopos-api/internal/domain/entity"
	"github.com/danuwijaya/tokopos-api/internal/domain/repository"
	"github.com/danuwijaya/tokopos-api/pkg/pagination"
)

// mockProductRepo implements repository.ProductRepository for testing
type mockProductRepo struct {
	Products map[uuid.UUID]entity.Product
	Err      error
}

func (m *mockProductRepo) Create(_ context.Context, _ *entity.Product) error { return m.Err }

func (m *mockProductRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if p, ok := m.Products[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (m *mockProductRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []entity.Product
	for _, id := range ids {
		if p, ok := m.Products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	for _, p := range m.Products {
		if p.SKU == sku {
			return &p, nil
		}
	}
	return nil, nil
}

func (m *mockProductRepo) GetByBarcode(_ context.Context, _ string) (*entity.Product, error) {
	return nil, nil
}

func (m *mockProductRepo) Update(_ context.Context, _ *entity.Product) error { return m.Err }
func (m *mockProductRepo) Delete(_ context.Context, _ uuid.UUID) error       { return m.Err }

func (m *mockProductRepo) List(_ context.Context, _ *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	return nil, 0, nil
}

// mockCustomerRepo implements repository.CustomerRepository for testing
type mockCustomerRepo struct {
	Customer     *entity.Customer
	Err          error
	AdjustedBy   []int
	VisitAmounts []float64
}

func (m *mockCustomerRepo) Create(_ context.Context, _ *entity.Customer) error { return m.Err }

func (m *mockCustomerRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Customer != nil && m.Customer.ID == id {
		return m.Customer, nil
	}
	return nil, nil
}

func (m *mockCustomerRepo) GetByCode(_ context.Context, _ string) (*entity.Customer, error) {
	return nil, nil
}

func (m *mockCustomerRepo) Update(_ context.Context, _ *entity.Customer) error { return m.Err }
func (m *mockCustomerRepo) Delete(_ context.Context, _ uuid.UUID) error        { return m.Err }

func (m *mockCustomerRepo) List(_ context.Context, _ *repository.CustomerFilterParams) ([]entity.Customer, int64, error) {
	return nil, 0, nil
}

func (m *mockCustomerRepo) AdjustLoyaltyPoints(_ context.Context, _ uuid.UUID, delta int) error {
	m.AdjustedBy = append(m.AdjustedBy, delta)
	return nil
}

func (m *mockCustomerRepo) RecordVisit(_ context.Context, _ uuid.UUID, amount float64, _ time.Time) error {
	m.VisitAmounts = append(m.VisitAmounts, amount)
	return nil
}

// mockStoreRepo implements repository.StoreRepository for testing
type mockStoreRepo struct {
	Store *entity.Store
	Err   error
}

func (m *mockStoreRepo) Create(_ context.Context, _ *entity.Store) error { return m.Err }

func (m *mockStoreRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Store, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Store != nil && m.Store.ID == id {
		return m.Store, nil
	}
	return nil, nil
}

func (m *mockStoreRepo) GetByCode(_ context.Context, _ string) (*entity.Store, error) {
	return nil, nil
}

func (m *mockStoreRepo) Update(_ context.Context, _ *entity.Store) error { return m.Err }
func (m *mockStoreRepo) Delete(_ context.Context, _ uuid.UUID) error     { return m.Err }

func (m *mockStoreRepo) List(_ context.Context, _ *pagination.PaginationParams, _ string) ([]entity.Store, int64, error) {
	return nil, 0, nil
}

// mockStoreInvRepo implements repository.StoreInventoryRepository for testing
type mockStoreInvRepo struct {
	FailedIDs    []uuid.UUID
	DecrementErr error
	Decrements   map[uuid.UUID]int
	Restored     map[uuid.UUID]int
}

func (m *mockStoreInvRepo) GetByStoreAndProduct(_ context.Context, _, _ uuid.UUID) (*entity.StoreInventory, error) {
	return nil, nil
}

func (m *mockStoreInvRepo) ListByStore(_ context.Context, _ uuid.UUID, _ *pagination.PaginationParams, _ string) ([]entity.StoreInventory, int64, error) {
	return nil, 0, nil
}

func (m *mockStoreInvRepo) Adjust(_ context.Context, _, _ uuid.UUID, _ int) error { return nil }

func (m *mockStoreInvRepo) AtomicDecrementBatch(_ context.Context, _ uuid.UUID, decrements map[uuid.UUID]int) ([]uuid.UUID, error) {
	m.Decrements = decrements
	return m.FailedIDs, m.DecrementErr
}

func (m *mockStoreInvRepo) AtomicIncrementBatch(_ context.Context, _ uuid.UUID, increments map[uuid.UUID]int) error {
	m.Restored = increments
	return nil
}

func (m *mockStoreInvRepo) GetLowStock(_ context.Context, _ uuid.UUID, _ int) ([]entity.StoreInventory, error) {
	return nil, nil
}

// mockInvTxnRepo implements repository.InventoryTransactionRepository for testing
type mockInvTxnRepo struct {
	Created []entity.InventoryTransaction
}

func (m *mockInvTxnRepo) Create(_ context.Context, txn *entity.InventoryTransaction) error {
	m.Created = append(m.Created, *txn)
	return nil
}

func (m *mockInvTxnRepo) CreateBatch(_ context.Context, txns []entity.InventoryTransaction) error {
	m.Created = append(m.Created, txns...)
	return nil
}

func (m *mockInvTxnRepo) ListWithCursor(_ context.Context, _ *repository.TransactionCursorParams) ([]entity.InventoryTransaction, error) {
	return nil, nil
}

// mockDiscountRepo implements repository.DiscountRepository for testing
type mockDiscountRepo struct {
	Discount       *entity.Discount
	CustomerUsage  int64
	UsageIncrs     int
	RecordedUsages []entity.DiscountUsage
	Err            error
}

func (m *mockDiscountRepo) Create(_ context.Context, _ *entity.Discount) error { return m.Err }

func (m *mockDiscountRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Discount, error) {
	if m.Discount != nil && m.Discount.ID == id {
		return m.Discount, nil
	}
	return nil, nil
}

func (m *mockDiscountRepo) GetByCode(_ context.Context, code string) (*entity.Discount, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Discount != nil && m.Discount.Code == code {
		return m.Discount, nil
	}
	return nil, nil
}

func (m *mockDiscountRepo) Update(_ context.Context, _ *entity.Discount) error { return m.Err }
func (m *mockDiscountRepo) Delete(_ context.Context, _ uuid.UUID) error        { return m.Err }

func (m *mockDiscountRepo) List(_ context.Context, _ *pagination.PaginationParams, _ string, _ bool) ([]entity.Discount, int64, error) {
	return nil, 0, nil
}

func (m *mockDiscountRepo) ListActive(_ context.Context, _ *uuid.UUID) ([]entity.Discount, error) {
	return nil, nil
}

func (m *mockDiscountRepo) IncrementUsage(_ context.Context, _ uuid.UUID) error {
	m.UsageIncrs++
	return nil
}

func (m *mockDiscountRepo) CountUsageByCustomer(_ context.Context, _, _ uuid.UUID) (int64, error) {
	return m.CustomerUsage, nil
}

func (m *mockDiscountRepo) CreateUsage(_ context.Context, usage *entity.DiscountUsage) error {
	m.RecordedUsages = append(m.RecordedUsages, *usage)
	return nil
}

// mockSaleRepo implements repository.SaleRepository for testing
type mockSaleRepo struct {
	CreatedSale *entity.Sale
	CreateErr   error
	Sale        *entity.Sale
	Updated     *entity.Sale
}

func (m *mockSaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	m.CreatedSale = sale
	return m.CreateErr
}

func (m *mockSaleRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Sale, error) {
	if m.Sale != nil && m.Sale.ID == id {
		return m.Sale, nil
	}
	return nil, nil
}

func (m *mockSaleRepo) GetWithDetails(_ context.Context, id uuid.UUID) (*entity.Sale, error) {
	return m.GetByID(context.Background(), id)
}

func (m *mockSaleRepo) GetByNumber(_ context.Context, _ string) (*entity.Sale, error) {
	return m.Sale, nil
}

func (m *mockSaleRepo) Update(_ context.Context, sale *entity.Sale) error {
	m.Updated = sale
	return nil
}

func (m *mockSaleRepo) List(_ context.Context, _ *repository.SaleFilterParams) ([]entity.Sale, int64, error) {
	return nil, 0, nil
}

func (m *mockSaleRepo) GetStats(_ context.Context, _ *uuid.UUID, _, _ time.Time) (*repository.SaleStats, error) {
	return &repository.SaleStats{}, nil
}

// mockSettingsRepo implements repository.SettingsRepository for testing
type mockSettingsRepo struct {
	Values map[string]string
}

func (m *mockSettingsRepo) GetAll(_ context.Context) ([]entity.Setting, error) {
	out := make([]entity.Setting, 0, len(m.Values))
	for k, v := range m.Values {
		out = append(out, entity.Setting{Key: k, Value: v})
	}
	return out, nil
}

func (m *mockSettingsRepo) Get(_ context.Context, key string) (*entity.Setting, error) {
	if v, ok := m.Values[key]; ok {
		return &entity.Setting{Key: key, Value: v}, nil
	}
	return nil, nil
}

func (m *mockSettingsRepo) Upsert(_ context.Context, key, value string) error {
	m.Values[key] = value
	return nil
}

func (m *mockSettingsRepo) UpsertBatch(_ context.Context, values map[string]string) error {
	for k, v := range values {
		m.Values[k] = v
	}
	return nil
}

// mockInvRepo implements repository.InventoryRepository for testing
type mockInvRepo struct {
	FailedIDs    []uuid.UUID
	DecrementErr error
	Decrements   map[uuid.UUID]int
	Adjustments  map[uuid.UUID]int
	AdjustErr    error
}

func (m *mockInvRepo) GetByWarehouseAndProduct(_ context.Context, _, _ uuid.UUID) (*entity.Inventory, error) {
	return nil, nil
}

func (m *mockInvRepo) ListByWarehouse(_ context.Context, _ uuid.UUID, _ *pagination.PaginationParams, _ string) ([]entity.Inventory, int64, error) {
	return nil, 0, nil
}

func (m *mockInvRepo) Adjust(_ context.Context, _, productID uuid.UUID, delta int) error {
	if m.AdjustErr != nil {
		return m.AdjustErr
	}
	if m.Adjustments == nil {
		m.Adjustments = make(map[uuid.UUID]int)
	}
	m.Adjustments[productID] += delta
	return nil
}

func (m *mockInvRepo) AtomicDecrementBatch(_ context.Context, _ uuid.UUID, decrements map[uuid.UUID]int) ([]uuid.UUID, error) {
	m.Decrements = decrements
	return m.FailedIDs, m.DecrementErr
}

// mockWarehouseRepo implements repository.WarehouseRepository for testing
type mockWarehouseRepo struct {
	Warehouse *entity.Warehouse
}

func (m *mockWarehouseRepo) Create(_ context.Context, _ *entity.Warehouse) error { return nil }

func (m *mockWarehouseRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Warehouse, error) {
	if m.Warehouse != nil && m.Warehouse.ID == id {
		return m.Warehouse, nil
	}
	return nil, nil
}

func (m *mockWarehouseRepo) GetByCode(_ context.Context, _ string) (*entity.Warehouse, error) {
	return nil, nil
}

func (m *mockWarehouseRepo) Update(_ context.Context, _ *entity.Warehouse) error { return nil }
func (m *mockWarehouseRepo) Delete(_ context.Context, _ uuid.UUID) error         { return nil }

func (m *mockWarehouseRepo) List(_ context.Context, _ *pagination.PaginationParams, _ string) ([]entity.Warehouse, int64, error) {
	return nil, 0, nil
}

// mockSupplierRepo implements repository.SupplierRepository for testing
type mockSupplierRepo struct {
	Supplier *entity.Supplier
}

func (m *mockSupplierRepo) Create(_ context.Context, _ *entity.Supplier) error { return nil }

func (m *mockSupplierRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Supplier, error) {
	if m.Supplier != nil && m.Supplier.ID == id {
		return m.Supplier, nil
	}
	return nil, nil
}

func (m *mockSupplierRepo) GetByCode(_ context.Context, _ string) (*entity.Supplier, error) {
	return nil, nil
}

func (m *mockSupplierRepo) Update(_ context.Context, _ *entity.Supplier) error { return nil }
func (m *mockSupplierRepo) Delete(_ context.Context, _ uuid.UUID) error        { return nil }

func (m *mockSupplierRepo) List(_ context.Context, _ *pagination.PaginationParams, _ string) ([]entity.Supplier, int64, error) {
	return nil, 0, nil
}

// mockTransferRepo implements repository.StockTransferRepository for testing
type mockTransferRepo struct {
	Transfer *entity.StockTransfer
	Created  *entity.StockTransfer
	Updated  *entity.StockTransfer
}

func (m *mockTransferRepo) Create(_ context.Context, transfer *entity.StockTransfer) error {
	m.Created = transfer
	return nil
}

func (m *mockTransferRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.StockTransfer, error) {
	if m.Transfer != nil && m.Transfer.ID == id {
		return m.Transfer, nil
	}
	return nil, nil
}

func (m *mockTransferRepo) GetWithItems(_ context.Context, id uuid.UUID) (*entity.StockTransfer, error) {
	return m.GetByID(context.Background(), id)
}

func (m *mockTransferRepo) Update(_ context.Context, transfer *entity.StockTransfer) error {
	m.Updated = transfer
	return nil
}

func (m *mockTransferRepo) List(_ context.Context, _ *repository.TransferFilterParams) ([]entity.StockTransfer, int64, error) {
	return nil, 0, nil
}

// mockPORepo implements repository.PurchaseOrderRepository for testing
type mockPORepo struct {
	Order        *entity.PurchaseOrder
	Created      *entity.PurchaseOrder
	Updated      *entity.PurchaseOrder
	UpdatedItems []entity.PurchaseOrderItem
}

func (m *mockPORepo) Create(_ context.Context, order *entity.PurchaseOrder) error {
	m.Created = order
	return nil
}

func (m *mockPORepo) GetByID(_ context.Context, id uuid.UUID) (*entity.PurchaseOrder, error) {
	if m.Order != nil && m.Order.ID == id {
		return m.Order, nil
	}
	return nil, nil
}

func (m *mockPORepo) GetWithItems(_ context.Context, id uuid.UUID) (*entity.PurchaseOrder, error) {
	return m.GetByID(context.Background(), id)
}

func (m *mockPORepo) Update(_ context.Context, order *entity.PurchaseOrder) error {
	m.Updated = order
	return nil
}

func (m *mockPORepo) UpdateItem(_ context.Context, item *entity.PurchaseOrderItem) error {
	m.UpdatedItems = append(m.UpdatedItems, *item)
	return nil
}

func (m *mockPORepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func (m *mockPORepo) List(_ context.Context, _ *repository.PurchaseOrderFilterParams) ([]entity.PurchaseOrder, int64, error) {
	return nil, 0, nil
}
