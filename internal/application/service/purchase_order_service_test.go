package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danuwijaya/tokopos-api/internal/domain/entity"
	"github.com/danuwijaya/tokopos-api/internal/domain/enum"
	"github.com/danuwijaya/tokopos-api/pkg/apperror"
)

type purchaseOrderServiceFixture struct {
	svc        *PurchaseOrderService
	poRepo     *mockPORepo
	invRepo    *mockInvRepo
	invTxnRepo *mockInvTxnRepo

	supplier  *entity.Supplier
	warehouse *entity.Warehouse
	product   entity.Product
}

func newPurchaseOrderServiceFixture() *purchaseOrderServiceFixture {
	supplier := &entity.Supplier{ID: uuid.New(), Name: "PT Sumber Rejeki"}
	warehouse := &entity.Warehouse{ID: uuid.New(), Code: "WH01", Name: "Gudang Pusat"}
	product := entity.Product{ID: uuid.New(), SKU: "PRD-1", Name: "Kopi Susu", IsActive: true}

	f := &purchaseOrderServiceFixture{
		poRepo:     &mockPORepo{},
		invRepo:    &mockInvRepo{},
		invTxnRepo: &mockInvTxnRepo{},
		supplier:   supplier,
		warehouse:  warehouse,
		product:    product,
	}

	f.svc = NewPurchaseOrderService(
		f.poRepo,
		&mockSupplierRepo{Supplier: supplier},
		&mockWarehouseRepo{Warehouse: warehouse},
		&mockProductRepo{Products: map[uuid.UUID]entity.Product{product.ID: product}},
		f.invRepo,
		f.invTxnRepo,
	)
	return f
}

func (f *purchaseOrderServiceFixture) order(status enum.PurchaseOrderStatus, quantity int) *entity.PurchaseOrder {
	order := &entity.PurchaseOrder{
		ID:          uuid.New(),
		OrderNumber: "PO-0001",
		SupplierID:  f.supplier.ID,
		WarehouseID: f.warehouse.ID,
		Status:      status,
		CreatedBy:   uuid.New(),
		Items: []entity.PurchaseOrderItem{
			{ProductID: f.product.ID, Quantity: quantity, UnitCost: 50000},
		},
	}
	f.poRepo.Order = order
	return order
}

func TestCreatePurchaseOrder_DraftWithTotal(t *testing.T) {
	f := newPurchaseOrderServiceFixture()

	order, err := f.svc.CreatePurchaseOrder(context.Background(), &CreatePurchaseOrderInput{
		SupplierID:  f.supplier.ID,
		WarehouseID: f.warehouse.ID,
		CreatedBy:   uuid.New(),
		Items:       []PurchaseOrderItemInput{{ProductID: f.product.ID, Quantity: 10, UnitCost: 50000}},
	})

	require.NoError(t, err)
	assert.Equal(t, enum.PurchaseOrderStatusDraft, order.Status)
	assert.Equal(t, 500000.0, order.TotalCost)
	// Stock only moves on receiving
	assert.Empty(t, f.invRepo.Adjustments)
}

func TestCreatePurchaseOrder_RejectsNegativeUnitCost(t *testing.T) {
	f := newPurchaseOrderServiceFixture()

	_, err := f.svc.CreatePurchaseOrder(context.Background(), &CreatePurchaseOrderInput{
		SupplierID:  f.supplier.ID,
		WarehouseID: f.warehouse.ID,
		CreatedBy:   uuid.New(),
		Items:       []PurchaseOrderItemInput{{ProductID: f.product.ID, Quantity: 10, UnitCost: -1}},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative")
	assert.Nil(t, f.poRepo.Created)
}

func TestPlaceOrder_MarksOrdered(t *testing.T) {
	f := newPurchaseOrderServiceFixture()
	order := f.order(enum.PurchaseOrderStatusDraft, 10)

	placed, err := f.svc.PlaceOrder(context.Background(), order.ID)

	require.NoError(t, err)
	assert.Equal(t, enum.PurchaseOrderStatusOrdered, placed.Status)
	require.NotNil(t, placed.OrderDate)
}

func TestPlaceOrder_RejectsNonDraft(t *testing.T) {
	f := newPurchaseOrderServiceFixture()
	order := f.order(enum.PurchaseOrderStatusOrdered, 10)

	_, err := f.svc.PlaceOrder(context.Background(), order.ID)

	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 422, appErr.Code)
	assert.Nil(t, f.poRepo.Updated)
}

func TestReceiveDelivery_PartialThenReceived(t *testing.T) {
	f := newPurchaseOrderServiceFixture()
	order := f.order(enum.PurchaseOrderStatusOrdered, 10)
	userID := uuid.New()

	updated, err := f.svc.ReceiveDelivery(context.Background(), order.ID, userID,
		[]ReceiveItemInput{{ProductID: f.product.ID, Quantity: 4}})

	require.NoError(t, err)
	assert.Equal(t, enum.PurchaseOrderStatusPartial, updated.Status)
	assert.Equal(t, 4, f.invRepo.Adjustments[f.product.ID])
	require.Len(t, f.poRepo.UpdatedItems, 1)
	assert.Equal(t, 4, f.poRepo.UpdatedItems[0].ReceivedQuantity)
	require.Len(t, f.invTxnRepo.Created, 1)
	ledger := f.invTxnRepo.Created[0]
	assert.Equal(t, enum.TransactionTypeIn, ledger.Type)
	assert.Equal(t, 4, ledger.Quantity)
	assert.Equal(t, "purchase_order", ledger.ReferenceType)
	assert.Equal(t, f.warehouse.ID, *ledger.WarehouseID)

	// Receiving the remainder promotes the order to received
	updated, err = f.svc.ReceiveDelivery(context.Background(), order.ID, userID,
		[]ReceiveItemInput{{ProductID: f.product.ID, Quantity: 6}})

	require.NoError(t, err)
	assert.Equal(t, enum.PurchaseOrderStatusReceived, updated.Status)
	assert.Equal(t, 10, f.invRepo.Adjustments[f.product.ID])
}

func TestReceiveDelivery_OverReceiptRejected(t *testing.T) {
	f := newPurchaseOrderServiceFixture()
	order := f.order(enum.PurchaseOrderStatusPartial, 10)
	order.Items[0].ReceivedQuantity = 8

	_, err := f.svc.ReceiveDelivery(context.Background(), order.ID, uuid.New(),
		[]ReceiveItemInput{{ProductID: f.product.ID, Quantity: 3}})

	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 422, appErr.Code)
	assert.Contains(t, err.Error(), "exceeds ordered quantity")
	assert.Empty(t, f.invRepo.Adjustments)
	assert.Empty(t, f.invTxnRepo.Created)
}

func TestReceiveDelivery_UnknownProductRejected(t *testing.T) {
	f := newPurchaseOrderServiceFixture()
	order := f.order(enum.PurchaseOrderStatusOrdered, 10)

	_, err := f.svc.ReceiveDelivery(context.Background(), order.ID, uuid.New(),
		[]ReceiveItemInput{{ProductID: uuid.New(), Quantity: 1}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not on this purchase order")
	assert.Empty(t, f.invRepo.Adjustments)
}

func TestReceiveDelivery_RejectsClosedOrder(t *testing.T) {
	for _, status := range []enum.PurchaseOrderStatus{
		enum.PurchaseOrderStatusDraft,
		enum.PurchaseOrderStatusReceived,
		enum.PurchaseOrderStatusCancelled,
	} {
		t.Run(status.String(), func(t *testing.T) {
			f := newPurchaseOrderServiceFixture()
			order := f.order(status, 10)

			_, err := f.svc.ReceiveDelivery(context.Background(), order.ID, uuid.New(),
				[]ReceiveItemInput{{ProductID: f.product.ID, Quantity: 1}})

			require.Error(t, err)
			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, 422, appErr.Code)
			assert.Empty(t, f.invRepo.Adjustments)
		})
	}
}

func TestCancelPurchaseOrder_BeforeReceiving(t *testing.T) {
	f := newPurchaseOrderServiceFixture()
	order := f.order(enum.PurchaseOrderStatusOrdered, 10)

	cancelled, err := f.svc.CancelPurchaseOrder(context.Background(), order.ID)

	require.NoError(t, err)
	assert.Equal(t, enum.PurchaseOrderStatusCancelled, cancelled.Status)
}

func TestCancelPurchaseOrder_RejectsAfterPartialReceipt(t *testing.T) {
	f := newPurchaseOrderServiceFixture()
	order := f.order(enum.PurchaseOrderStatusPartial, 10)

	_, err := f.svc.CancelPurchaseOrder(context.Background(), order.ID)

	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 422, appErr.Code)
	assert.Nil(t, f.poRepo.Updated)
}
