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

type transferServiceFixture struct {
	svc          *TransferService
	transferRepo *mockTransferRepo
	invRepo      *mockInvRepo
	storeInvRepo *mockStoreInvRepo
	invTxnRepo   *mockInvTxnRepo

	warehouse *entity.Warehouse
	store     *entity.Store
	product   entity.Product
}

func newTransferServiceFixture() *transferServiceFixture {
	warehouse := &entity.Warehouse{ID: uuid.New(), Code: "WH01", Name: "Gudang Pusat"}
	store := &entity.Store{ID: uuid.New(), Code: "ST01", Name: "Main Store", IsActive: true}
	product := entity.Product{ID: uuid.New(), SKU: "PRD-1", Name: "Kopi Susu", IsActive: true}

	f := &transferServiceFixture{
		transferRepo: &mockTransferRepo{},
		invRepo:      &mockInvRepo{},
		storeInvRepo: &mockStoreInvRepo{},
		invTxnRepo:   &mockInvTxnRepo{},
		warehouse:    warehouse,
		store:        store,
		product:      product,
	}

	f.svc = NewTransferService(
		f.transferRepo,
		f.invRepo,
		f.storeInvRepo,
		f.invTxnRepo,
		&mockProductRepo{Products: map[uuid.UUID]entity.Product{product.ID: product}},
		&mockStoreRepo{Store: store},
		&mockWarehouseRepo{Warehouse: warehouse},
	)
	return f
}

func (f *transferServiceFixture) transfer(status enum.TransferStatus) *entity.StockTransfer {
	transfer := &entity.StockTransfer{
		ID:             uuid.New(),
		TransferNumber: "TRF-0001",
		WarehouseID:    f.warehouse.ID,
		StoreID:        f.store.ID,
		Status:         status,
		RequestedBy:    uuid.New(),
		Items: []entity.StockTransferItem{
			{ProductID: f.product.ID, Quantity: 5},
		},
	}
	f.transferRepo.Transfer = transfer
	return transfer
}

func TestCreateTransfer_PendingWithItems(t *testing.T) {
	f := newTransferServiceFixture()

	transfer, err := f.svc.CreateTransfer(context.Background(), &CreateTransferInput{
		WarehouseID: f.warehouse.ID,
		StoreID:     f.store.ID,
		RequestedBy: uuid.New(),
		Items:       []TransferItemInput{{ProductID: f.product.ID, Quantity: 5}},
	})

	require.NoError(t, err)
	assert.Equal(t, enum.TransferStatusPending, transfer.Status)
	require.Len(t, transfer.Items, 1)
	assert.Equal(t, 5, transfer.Items[0].Quantity)
	// Nothing moves until approval
	assert.Empty(t, f.invRepo.Decrements)
	assert.Empty(t, f.invTxnRepo.Created)
}

func TestCreateTransfer_RejectsNonPositiveQuantity(t *testing.T) {
	f := newTransferServiceFixture()

	_, err := f.svc.CreateTransfer(context.Background(), &CreateTransferInput{
		WarehouseID: f.warehouse.ID,
		StoreID:     f.store.ID,
		RequestedBy: uuid.New(),
		Items:       []TransferItemInput{{ProductID: f.product.ID, Quantity: 0}},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "greater than zero")
	assert.Nil(t, f.transferRepo.Created)
}

func TestUpdateTransferStatus_ApproveDeductsWarehouseStock(t *testing.T) {
	f := newTransferServiceFixture()
	transfer := f.transfer(enum.TransferStatusPending)
	approver := uuid.New()

	updated, err := f.svc.UpdateTransferStatus(context.Background(), transfer.ID, enum.TransferStatusApproved, approver)

	require.NoError(t, err)
	assert.Equal(t, enum.TransferStatusApproved, updated.Status)
	require.NotNil(t, updated.ApprovedBy)
	assert.Equal(t, approver, *updated.ApprovedBy)
	assert.Equal(t, 5, f.invRepo.Decrements[f.product.ID])
	require.Len(t, f.invTxnRepo.Created, 1)
	ledger := f.invTxnRepo.Created[0]
	assert.Equal(t, enum.TransactionTypeTransferOut, ledger.Type)
	assert.Equal(t, -5, ledger.Quantity)
	assert.Equal(t, f.warehouse.ID, *ledger.WarehouseID)
	assert.Equal(t, "transfer", ledger.ReferenceType)
}

func TestUpdateTransferStatus_ApproveInsufficientWarehouseStock(t *testing.T) {
	f := newTransferServiceFixture()
	transfer := f.transfer(enum.TransferStatusPending)
	f.invRepo.FailedIDs = []uuid.UUID{f.product.ID}

	_, err := f.svc.UpdateTransferStatus(context.Background(), transfer.ID, enum.TransferStatusApproved, uuid.New())

	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 422, appErr.Code)
	assert.Contains(t, err.Error(), "Kopi Susu")
	assert.Nil(t, f.transferRepo.Updated)
	assert.Empty(t, f.invTxnRepo.Created)
}

func TestUpdateTransferStatus_CompleteReceivesStoreStock(t *testing.T) {
	f := newTransferServiceFixture()
	transfer := f.transfer(enum.TransferStatusInTransit)

	updated, err := f.svc.UpdateTransferStatus(context.Background(), transfer.ID, enum.TransferStatusCompleted, uuid.New())

	require.NoError(t, err)
	assert.Equal(t, enum.TransferStatusCompleted, updated.Status)
	assert.Equal(t, 5, f.storeInvRepo.Restored[f.product.ID])
	require.Len(t, f.invTxnRepo.Created, 1)
	ledger := f.invTxnRepo.Created[0]
	assert.Equal(t, enum.TransactionTypeTransferIn, ledger.Type)
	assert.Equal(t, 5, ledger.Quantity)
	assert.Equal(t, f.store.ID, *ledger.StoreID)
}

func TestUpdateTransferStatus_CancelAfterApproveRestoresStock(t *testing.T) {
	f := newTransferServiceFixture()
	transfer := f.transfer(enum.TransferStatusApproved)

	updated, err := f.svc.UpdateTransferStatus(context.Background(), transfer.ID, enum.TransferStatusCancelled, uuid.New())

	require.NoError(t, err)
	assert.Equal(t, enum.TransferStatusCancelled, updated.Status)
	assert.Equal(t, 5, f.invRepo.Adjustments[f.product.ID])
	require.Len(t, f.invTxnRepo.Created, 1)
	ledger := f.invTxnRepo.Created[0]
	assert.Equal(t, enum.TransactionTypeTransferIn, ledger.Type)
	assert.Equal(t, "transfer_cancel", ledger.ReferenceType)
	assert.Equal(t, f.warehouse.ID, *ledger.WarehouseID)
}

func TestUpdateTransferStatus_CancelBeforeApproveMovesNothing(t *testing.T) {
	f := newTransferServiceFixture()
	transfer := f.transfer(enum.TransferStatusPending)

	updated, err := f.svc.UpdateTransferStatus(context.Background(), transfer.ID, enum.TransferStatusCancelled, uuid.New())

	require.NoError(t, err)
	assert.Equal(t, enum.TransferStatusCancelled, updated.Status)
	assert.Empty(t, f.invRepo.Adjustments)
	assert.Empty(t, f.invTxnRepo.Created)
}

func TestUpdateTransferStatus_RejectsInvalidTransitions(t *testing.T) {
	tests := []struct {
		name string
		from enum.TransferStatus
		to   enum.TransferStatus
	}{
		{"pending cannot complete", enum.TransferStatusPending, enum.TransferStatusCompleted},
		{"pending cannot ship", enum.TransferStatusPending, enum.TransferStatusInTransit},
		{"in transit cannot cancel", enum.TransferStatusInTransit, enum.TransferStatusCancelled},
		{"completed is terminal", enum.TransferStatusCompleted, enum.TransferStatusCancelled},
		{"cancelled is terminal", enum.TransferStatusCancelled, enum.TransferStatusApproved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTransferServiceFixture()
			transfer := f.transfer(tt.from)

			_, err := f.svc.UpdateTransferStatus(context.Background(), transfer.ID, tt.to, uuid.New())

			require.Error(t, err)
			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, 422, appErr.Code)
			assert.Nil(t, f.transferRepo.Updated)
			assert.Empty(t, f.invRepo.Decrements)
			assert.Empty(t, f.invTxnRepo.Created)
		})
	}
}

func TestUpdateTransferStatus_NotFound(t *testing.T) {
	f := newTransferServiceFixture()

	_, err := f.svc.UpdateTransferStatus(context.Background(), uuid.New(), enum.TransferStatusApproved, uuid.New())

	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Code)
}
