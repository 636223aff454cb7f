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

// TransferHandler handles warehouse-to-store transfer HTTP requests
type TransferHandler struct {
	transferService *service.TransferService
}

// NewTransferHandler creates a new transfer handler
func NewTransferHandler(transferService *service.TransferService) *TransferHandler {
	return &TransferHandler{transferService: transferService}
}

// List handles listing transfers
func (h *TransferHandler) List(c *gin.Context) {
	params, _ := listParams(c)

	filterParams := &repository.TransferFilterParams{Pagination: params}

	if s := c.Query("warehouse_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filterParams.WarehouseID = &id
		}
	}
	if s := c.Query("store_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filterParams.StoreID = &id
		}
	}
	if s := c.Query("status"); s != "" {
		status, ok := enum.ParseTransferStatus(s)
		if !ok {
			response.BadRequest(c, "Invalid transfer status")
			return
		}
		filterParams.Status = &status
	}

	transfers, total, err := h.transferService.ListTransfers(c.Request.Context(), filterParams)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(transfers, pagination.NewPagination(params.Page, params.PerPage, total))
	response.SuccessWithPagination(c, 200, "Transfers retrieved successfully", result)
}

// Create handles creating a transfer request
func (h *TransferHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	items := make([]service.TransferItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = service.TransferItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	transfer, err := h.transferService.CreateTransfer(c.Request.Context(), &service.CreateTransferInput{
		WarehouseID: req.WarehouseID,
		StoreID:     req.StoreID,
		RequestedBy: *userID,
		Items:       items,
		Notes:       req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Transfer created successfully", transfer)
}

// Get handles getting a single transfer
func (h *TransferHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transfer ID")
		return
	}

	transfer, err := h.transferService.GetTransfer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transfer retrieved successfully", transfer)
}

// UpdateStatus moves a transfer through its lifecycle. Approval takes
// stock out of the warehouse and completion puts it into the store.
func (h *TransferHandler) UpdateStatus(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid transfer ID")
		return
	}

	var req request.UpdateTransferStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	status, ok := enum.ParseTransferStatus(req.Status)
	if !ok {
		response.BadRequest(c, "Invalid transfer status")
		return
	}

	transfer, err := h.transferService.UpdateTransferStatus(c.Request.Context(), id, status, *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transfer status updated successfully", transfer)
}
