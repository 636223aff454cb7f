package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/danuwijaya/tokopos-api/internal/application/service"
	"github.com/danuwijaya/tokopos-api/internal/domain/enum"
	"github.com/danuwijaya/tokopos-api/internal/domain/repository"
	"github.com/danuwijaya/tokopos-api/internal/presentation/http/dto/request"
	"github.com/danuwijaya/tokopos-api/internal/presentation/http/dto/response"
	"github.com/danuwijaya/tokopos-api/pkg/pagination"
)

// PurchaseOrderHandler handles supplier purchase order HTTP requests
type PurchaseOrderHandler struct {
	poService *service.PurchaseOrderService
}

// NewPurchaseOrderHandler creates a new purchase order handler
func NewPurchaseOrderHandler(poService *service.PurchaseOrderService) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{poService: poService}
}

// List handles listing purchase orders
func (h *PurchaseOrderHandler) List(c *gin.Context) {
	params, search := listParams(c)

	filterParams := &repository.PurchaseOrderFilterParams{
		Pagination: params,
		Search:     search,
	}

	if s := c.Query("supplier_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filterParams.SupplierID = &id
		}
	}
	if s := c.Query("warehouse_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filterParams.WarehouseID = &id
		}
	}
	if s := c.Query("status"); s != "" {
		status, ok := enum.ParsePurchaseOrderStatus(s)
		if !ok {
			response.BadRequest(c, "Invalid purchase order status")
			return
		}
		filterParams.Status = &status
	}

	orders, total, err := h.poService.ListPurchaseOrders(c.Request.Context(), filterParams)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(orders, pagination.NewPagination(params.Page, params.PerPage, total))
	response.SuccessWithPagination(c, 200, "Purchase orders retrieved successfully", result)
}

// Create handles creating a draft purchase order
func (h *PurchaseOrderHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	items := make([]service.PurchaseOrderItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = service.PurchaseOrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitCost:  item.UnitCost,
		}
	}

	order, err := h.poService.CreatePurchaseOrder(c.Request.Context(), &service.CreatePurchaseOrderInput{
		SupplierID:   req.SupplierID,
		WarehouseID:  req.WarehouseID,
		CreatedBy:    *userID,
		ExpectedDate: req.ExpectedDate,
		Items:        items,
		Notes:        req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Purchase order created successfully", order)
}

// Get handles getting a single purchase order with its items
func (h *PurchaseOrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid purchase order ID")
		return
	}

	order, err := h.poService.GetPurchaseOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase order retrieved successfully", order)
}

// Place moves a draft order to ordered
func (h *PurchaseOrderHandler) Place(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid purchase order ID")
		return
	}

	order, err := h.poService.PlaceOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase order placed successfully", order)
}

// Cancel cancels a draft or ordered purchase order
func (h *PurchaseOrderHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid purchase order ID")
		return
	}

	order, err := h.poService.CancelPurchaseOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase order cancelled successfully", order)
}

// Receive records a full or partial delivery against an order
func (h *PurchaseOrderHandler) Receive(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid purchase order ID")
		return
	}

	var req request.ReceiveDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	items := make([]service.ReceiveItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = service.ReceiveItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	order, err := h.poService.ReceiveDelivery(c.Request.Context(), id, *userID, items)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Delivery received successfully", order)
}
