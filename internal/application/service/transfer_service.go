package service

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danuwijaya/tokopos-api/internal/domain/entity"
	"github.com/danuwijaya/tokopos-api/internal/domain/enum"
	"github.com/danuwijaya/tokopos-api/internal/domain/repository"
	"github.com/danuwijaya/tokopos-api/pkg/apperror"
	"github.com/danuwijaya/tokopos-api/pkg/utils"
)

// TransferService handles stock transfers from warehouses to stores.
// Warehouse stock leaves on approval; store stock arrives on
// completion, so goods in transit are not sellable anywhere.
type TransferService struct {
	transferRepo repository.StockTransferRepository
	invRepo      repository.InventoryRepository
	storeInvRepo repository.StoreInventoryRepository
	invTxnRepo   repository.InventoryTransactionRepository
	productRepo  repository.ProductRepository
	storeRepo    repository.StoreRepository
	whRepo       repository.WarehouseRepository
}

// NewTransferService creates a new transfer service
func NewTransferService(
	transferRepo repository.StockTransferRepository,
	invRepo repository.InventoryRepository,
	storeInvRepo repository.StoreInventoryRepository,
	invTxnRepo repository.InventoryTransactionRepository,
	productRepo repository.ProductRepository,
	storeRepo repository.StoreRepository,
	whRepo repository.WarehouseRepository,
) *TransferService {
	return &TransferService{
		transferRepo: transferRepo,
		invRepo:      invRepo,
		storeInvRepo: storeInvRepo,
		invTxnRepo:   invTxnRepo,
		productRepo:  productRepo,
		storeRepo:    storeRepo,
		whRepo:       whRepo,
	}
}

// TransferItemInput is one product line in a transfer request
type TransferItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CreateTransferInput represents the create transfer input
type CreateTransferInput struct {
	WarehouseID uuid.UUID
	StoreID     uuid.UUID
	RequestedBy uuid.UUID
	Items       []TransferItemInput
	Notes       *string
}

// CreateTransfer creates a pending stock transfer request
func (s *TransferService) CreateTransfer(ctx context.Context, input *CreateTransferInput) (*entity.StockTransfer, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Transfer must have at least one item")
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Item quantity must be greater than zero")
		}
	}

	warehouse, err := s.whRepo.GetByID(ctx, input.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, apperror.NewNotFoundError("Warehouse")
	}

	store, err := s.storeRepo.GetByID(ctx, input.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, apperror.NewNotFoundError("Store")
	}

	ids := make([]uuid.UUID, 0, len(input.Items))
	for _, item := range input.Items {
		ids = append(ids, item.ProductID)
	}
	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(products) != len(ids) {
		return nil, apperror.NewNotFoundError("Product")
	}

	transfer := &entity.StockTransfer{
		TransferNumber: utils.GenerateTransferNumber(time.Now()),
		WarehouseID:    input.WarehouseID,
		StoreID:        input.StoreID,
		Status:         enum.TransferStatusPending,
		RequestedBy:    input.RequestedBy,
		Notes:          input.Notes,
	}
	for _, item := range input.Items {
		transfer.Items = append(transfer.Items, entity.StockTransferItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	if err := s.transferRepo.Create(ctx, transfer); err != nil {
		return nil, err
	}

	return transfer, nil
}

// GetTransfer retrieves a transfer with its items
func (s *TransferService) GetTransfer(ctx context.Context, id uuid.UUID) (*entity.StockTransfer, error) {
	transfer, err := s.transferRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if transfer == nil {
		return nil, apperror.NewNotFoundError("Transfer")
	}
	return transfer, nil
}

// ListTransfers lists transfers with filtering and pagination
func (s *TransferService) ListTransfers(ctx context.Context, params *repository.TransferFilterParams) ([]entity.StockTransfer, int64, error) {
	return s.transferRepo.List(ctx, params)
}

// UpdateTransferStatus moves a transfer through its lifecycle and
// applies the matching inventory effects
func (s *TransferService) UpdateTransferStatus(ctx context.Context, id uuid.UUID, next enum.TransferStatus, userID uuid.UUID) (*entity.StockTransfer, error) {
	transfer, err := s.transferRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if transfer == nil {
		return nil, apperror.NewNotFoundError("Transfer")
	}

	if !transfer.Status.CanTransitionTo(next) {
		return nil, apperror.NewAppError(http.StatusUnprocessableEntity,
			"Transfer cannot move from "+transfer.Status.String()+" to "+next.String())
	}

	switch next {
	case enum.TransferStatusApproved:
		if err := s.deductWarehouseStock(ctx, transfer, userID); err != nil {
			return nil, err
		}
		transfer.ApprovedBy = &userID
	case enum.TransferStatusCompleted:
		if err := s.receiveStoreStock(ctx, transfer, userID); err != nil {
			return nil, err
		}
	case enum.TransferStatusCancelled:
		// Stock already left the warehouse once the transfer was
		// approved, so a cancellation has to put it back
		if transfer.Status == enum.TransferStatusApproved {
			if err := s.restoreWarehouseStock(ctx, transfer, userID); err != nil {
				return nil, err
			}
		}
	}

	transfer.Status = next
	if err := s.transferRepo.Update(ctx, transfer); err != nil {
		return nil, err
	}

	return transfer, nil
}

func (s *TransferService) deductWarehouseStock(ctx context.Context, transfer *entity.StockTransfer, userID uuid.UUID) error {
	decrements := make(map[uuid.UUID]int, len(transfer.Items))
	for _, item := range transfer.Items {
		decrements[item.ProductID] += item.Quantity
	}

	failedIDs, err := s.invRepo.AtomicDecrementBatch(ctx, transfer.WarehouseID, decrements)
	if err != nil {
		return err
	}
	if len(failedIDs) > 0 {
		names := make([]string, 0, len(failedIDs))
		if products, loadErr := s.productRepo.GetByIDs(ctx, failedIDs); loadErr == nil {
			for _, product := range products {
				names = append(names, product.Name)
			}
		}
		if len(names) == 0 {
			for _, id := range failedIDs {
				names = append(names, id.String())
			}
		}
		return apperror.NewAppError(http.StatusUnprocessableEntity,
			"Insufficient warehouse stock for: "+strings.Join(names, ", "))
	}

	txns := make([]entity.InventoryTransaction, 0, len(transfer.Items))
	for _, item := range transfer.Items {
		txns = append(txns, entity.InventoryTransaction{
			Type:          enum.TransactionTypeTransferOut,
			ProductID:     item.ProductID,
			WarehouseID:   &transfer.WarehouseID,
			Quantity:      -item.Quantity,
			ReferenceType: "transfer",
			ReferenceID:   &transfer.ID,
			UserID:        userID,
		})
	}
	if err := s.invTxnRepo.CreateBatch(ctx, txns); err != nil {
		log.Printf("failed to write ledger for transfer %s: %v", transfer.TransferNumber, err)
	}
	return nil
}

func (s *TransferService) receiveStoreStock(ctx context.Context, transfer *entity.StockTransfer, userID uuid.UUID) error {
	increments := make(map[uuid.UUID]int, len(transfer.Items))
	for _, item := range transfer.Items {
		increments[item.ProductID] += item.Quantity
	}
	if err := s.storeInvRepo.AtomicIncrementBatch(ctx, transfer.StoreID, increments); err != nil {
		return err
	}

	txns := make([]entity.InventoryTransaction, 0, len(transfer.Items))
	for _, item := range transfer.Items {
		txns = append(txns, entity.InventoryTransaction{
			Type:          enum.TransactionTypeTransferIn,
			ProductID:     item.ProductID,
			StoreID:       &transfer.StoreID,
			Quantity:      item.Quantity,
			ReferenceType: "transfer",
			ReferenceID:   &transfer.ID,
			UserID:        userID,
		})
	}
	if err := s.invTxnRepo.CreateBatch(ctx, txns); err != nil {
		log.Printf("failed to write ledger for transfer %s: %v", transfer.TransferNumber, err)
	}
	return nil
}

func (s *TransferService) restoreWarehouseStock(ctx context.Context, transfer *entity.StockTransfer, userID uuid.UUID) error {
	for _, item := range transfer.Items {
		if err := s.invRepo.Adjust(ctx, transfer.WarehouseID, item.ProductID, item.Quantity); err != nil {
			return err
		}
	}

	txns := make([]entity.InventoryTransaction, 0, len(transfer.Items))
	for _, item := range transfer.Items {
		txns = append(txns, entity.InventoryTransaction{
			Type:          enum.TransactionTypeTransferIn,
			ProductID:     item.ProductID,
			WarehouseID:   &transfer.WarehouseID,
			Quantity:      item.Quantity,
			ReferenceType: "transfer_cancel",
			ReferenceID:   &transfer.ID,
			UserID:        userID,
		})
	}
	if err := s.invTxnRepo.CreateBatch(ctx, txns); err != nil {
		log.Printf("failed to write ledger for transfer %s: %v", transfer.TransferNumber, err)
	}
	return nil
}
