package service

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/danuwijaya/tokopos-api/internal/domain/entity"
	"github.com/danuwijaya/tokopos-api/internal/domain/enum"
	"github.com/danuwijaya/tokopos-api/internal/domain/repository"
	"github.com/danuwijaya/tokopos-api/pkg/apperror"
	"github.com/danuwijaya/tokopos-api/pkg/utils"
)

// PurchaseOrderService handles supplier replenishment orders and
// receiving into warehouse stock
type PurchaseOrderService struct {
	poRepo       repository.PurchaseOrderRepository
	supplierRepo repository.SupplierRepository
	whRepo       repository.WarehouseRepository
	productRepo  repository.ProductRepository
	invRepo      repository.InventoryRepository
	invTxnRepo   repository.InventoryTransactionRepository
}

// NewPurchaseOrderService creates a new purchase order service
func NewPurchaseOrderService(
	poRepo repository.PurchaseOrderRepository,
	supplierRepo repository.SupplierRepository,
	whRepo repository.WarehouseRepository,
	productRepo repository.ProductRepository,
	invRepo repository.InventoryRepository,
	invTxnRepo repository.InventoryTransactionRepository,
) *PurchaseOrderService {
	return &PurchaseOrderService{
		poRepo:       poRepo,
		supplierRepo: supplierRepo,
		whRepo:       whRepo,
		productRepo:  productRepo,
		invRepo:      invRepo,
		invTxnRepo:   invTxnRepo,
	}
}

// PurchaseOrderItemInput is one product line in a purchase order
type PurchaseOrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	UnitCost  float64
}

// CreatePurchaseOrderInput represents the create purchase order input
type CreatePurchaseOrderInput struct {
	SupplierID   uuid.UUID
	WarehouseID  uuid.UUID
	CreatedBy    uuid.UUID
	ExpectedDate *time.Time
	Items        []PurchaseOrderItemInput
	Notes        *string
}

// CreatePurchaseOrder creates a draft purchase order
func (s *PurchaseOrderService) CreatePurchaseOrder(ctx context.Context, input *CreatePurchaseOrderInput) (*entity.PurchaseOrder, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Purchase order must have at least one item")
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Item quantity must be greater than zero")
		}
		if item.UnitCost < 0 {
			return nil, apperror.NewBadRequestError("Unit cost cannot be negative")
		}
	}

	supplier, err := s.supplierRepo.GetByID(ctx, input.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}

	warehouse, err := s.whRepo.GetByID(ctx, input.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, apperror.NewNotFoundError("Warehouse")
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

	order := &entity.PurchaseOrder{
		OrderNumber:  utils.GeneratePurchaseOrderNumber(time.Now()),
		SupplierID:   input.SupplierID,
		WarehouseID:  input.WarehouseID,
		Status:       enum.PurchaseOrderStatusDraft,
		ExpectedDate: input.ExpectedDate,
		Notes:        input.Notes,
		CreatedBy:    input.CreatedBy,
	}
	var totalCost float64
	for _, item := range input.Items {
		totalCost += float64(item.Quantity) * item.UnitCost
		order.Items = append(order.Items, entity.PurchaseOrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitCost:  item.UnitCost,
		})
	}
	order.TotalCost = totalCost

	if err := s.poRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// GetPurchaseOrder retrieves a purchase order with its items
func (s *PurchaseOrderService) GetPurchaseOrder(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrder, error) {
	order, err := s.poRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Purchase order")
	}
	return order, nil
}

// ListPurchaseOrders lists purchase orders with filtering and pagination
func (s *PurchaseOrderService) ListPurchaseOrders(ctx context.Context, params *repository.PurchaseOrderFilterParams) ([]entity.PurchaseOrder, int64, error) {
	return s.poRepo.List(ctx, params)
}

// PlaceOrder marks a draft purchase order as sent to the supplier
func (s *PurchaseOrderService) PlaceOrder(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrder, error) {
	order, err := s.poRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Purchase order")
	}
	if order.Status != enum.PurchaseOrderStatusDraft {
		return nil, apperror.NewAppError(http.StatusUnprocessableEntity, "Only draft purchase orders can be placed")
	}

	now := time.Now()
	order.Status = enum.PurchaseOrderStatusOrdered
	order.OrderDate = &now

	if err := s.poRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// CancelPurchaseOrder cancels a purchase order that has not received
// any stock yet
func (s *PurchaseOrderService) CancelPurchaseOrder(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrder, error) {
	order, err := s.poRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Purchase order")
	}
	if order.Status != enum.PurchaseOrderStatusDraft && order.Status != enum.PurchaseOrderStatusOrdered {
		return nil, apperror.NewAppError(http.StatusUnprocessableEntity, "Purchase order can no longer be cancelled")
	}

	order.Status = enum.PurchaseOrderStatusCancelled
	if err := s.poRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// ReceiveItemInput is one received delivery line
type ReceiveItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// ReceiveDelivery records a (possibly partial) delivery against an
// ordered purchase order and adds the goods to warehouse stock
func (s *PurchaseOrderService) ReceiveDelivery(ctx context.Context, id uuid.UUID, userID uuid.UUID, received []ReceiveItemInput) (*entity.PurchaseOrder, error) {
	if len(received) == 0 {
		return nil, apperror.NewBadRequestError("Delivery must have at least one item")
	}

	order, err := s.poRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Purchase order")
	}
	if !order.Status.CanReceive() {
		return nil, apperror.NewAppError(http.StatusUnprocessableEntity, "Purchase order is not open for receiving")
	}

	itemsByProduct := make(map[uuid.UUID]*entity.PurchaseOrderItem, len(order.Items))
	for i := range order.Items {
		itemsByProduct[order.Items[i].ProductID] = &order.Items[i]
	}

	for _, delivery := range received {
		if delivery.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Received quantity must be greater than zero")
		}
		item, ok := itemsByProduct[delivery.ProductID]
		if !ok {
			return nil, apperror.NewBadRequestError("Received product is not on this purchase order")
		}
		if item.ReceivedQuantity+delivery.Quantity > item.Quantity {
			return nil, apperror.NewAppError(http.StatusUnprocessableEntity, "Received quantity exceeds ordered quantity")
		}
	}

	txns := make([]entity.InventoryTransaction, 0, len(received))
	for _, delivery := range received {
		item := itemsByProduct[delivery.ProductID]

		if err := s.invRepo.Adjust(ctx, order.WarehouseID, delivery.ProductID, delivery.Quantity); err != nil {
			return nil, err
		}

		item.ReceivedQuantity += delivery.Quantity
		if err := s.poRepo.UpdateItem(ctx, item); err != nil {
			return nil, err
		}

		txns = append(txns, entity.InventoryTransaction{
			Type:          enum.TransactionTypeIn,
			ProductID:     delivery.ProductID,
			WarehouseID:   &order.WarehouseID,
			Quantity:      delivery.Quantity,
			ReferenceType: "purchase_order",
			ReferenceID:   &order.ID,
			UserID:        userID,
		})
	}

	if err := s.invTxnRepo.CreateBatch(ctx, txns); err != nil {
		log.Printf("failed to write ledger for purchase order %s: %v", order.OrderNumber, err)
	}

	fullyReceived := true
	for _, item := range order.Items {
		if item.ReceivedQuantity < item.Quantity {
			fullyReceived = false
			break
		}
	}
	if fullyReceived {
		order.Status = enum.PurchaseOrderStatusReceived
	} else {
		order.Status = enum.PurchaseOrderStatusPartial
	}

	if err := s.poRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}
