package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/danuwijaya/tokopos-api/internal/application/service"
	"github.com/danuwijaya/tokopos-api/internal/domain/enum"
	"github.com/danuwijaya/tokopos-api/internal/domain/repository"
	"github.com/danuwijaya/tokopos-api/internal/presentation/http/dto/request"
	"github.com/danuwijaya/tokopos-api/internal/presentation/http/dto/response"
	"github.com/danuwijaya/tokopos-api/pkg/pagination"
)

// InventoryHandler handles stock level and stock ledger HTTP requests
type InventoryHandler struct {
	inventoryService *service.InventoryService
	settingsService  *service.SettingsService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService *service.InventoryService, settingsService *service.SettingsService) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
		settingsService:  settingsService,
	}
}

// ListWarehouseInventory lists stock rows for a warehouse
func (h *InventoryHandler) ListWarehouseInventory(c *gin.Context) {
	warehouseID, err := uuid.Parse(c.Query("warehouse_id"))
	if err != nil {
		response.BadRequest(c, "Invalid or missing warehouse_id")
		return
	}

	params, search := listParams(c)

	rows, total, err := h.inventoryService.ListWarehouseInventory(c.Request.Context(), warehouseID, params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(rows, pagination.NewPagination(params.Page, params.PerPage, total))
	response.SuccessWithPagination(c, 200, "Warehouse inventory retrieved successfully", result)
}

// ListStoreInventory lists sellable stock for a store, which is what
// the POS screen shows as availability
func (h *InventoryHandler) ListStoreInventory(c *gin.Context) {
	storeID, err := uuid.Parse(c.Query("store_id"))
	if err != nil {
		response.BadRequest(c, "Invalid or missing store_id")
		return
	}

	params, search := listParams(c)

	rows, total, err := h.inventoryService.ListStoreInventory(c.Request.Context(), storeID, params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(rows, pagination.NewPagination(params.Page, params.PerPage, total))
	response.SuccessWithPagination(c, 200, "Store inventory retrieved successfully", result)
}

// AdjustStock applies a signed manual stock adjustment
func (h *InventoryHandler) AdjustStock(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	err := h.inventoryService.AdjustStock(c.Request.Context(), &service.AdjustStockInput{
		ProductID:   req.ProductID,
		StoreID:     req.StoreID,
		WarehouseID: req.WarehouseID,
		Delta:       req.Delta,
		Notes:       req.Notes,
		UserID:      *userID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock adjusted successfully", nil)
}

// ListTransactions lists stock ledger entries with cursor pagination
func (h *InventoryHandler) ListTransactions(c *gin.Context) {
	var filter request.TransactionFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.TransactionCursorParams{}
	if filter.Cursor != "" || filter.Limit > 0 {
		direction := pagination.CursorDirectionNext
		if filter.Direction != "" {
			direction = pagination.CursorDirection(filter.Direction)
		}
		params.Cursor = &pagination.CursorParams{
			Cursor:    filter.Cursor,
			Limit:     filter.Limit,
			Direction: direction,
		}
	}

	if filter.ProductID != "" {
		if id, err := uuid.Parse(filter.ProductID); err == nil {
			params.ProductID = &id
		}
	}
	if filter.StoreID != "" {
		if id, err := uuid.Parse(filter.StoreID); err == nil {
			params.StoreID = &id
		}
	}
	if filter.WarehouseID != "" {
		if id, err := uuid.Parse(filter.WarehouseID); err == nil {
			params.WarehouseID = &id
		}
	}
	if filter.Type != "" {
		txnType, ok := enum.ParseInventoryTransactionType(filter.Type)
		if !ok {
			response.BadRequest(c, "Invalid transaction type")
			return
		}
		params.Type = &txnType
	}

	txns, cursorInfo, err := h.inventoryService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock transactions retrieved successfully", gin.H{
		"items":  txns,
		"cursor": cursorInfo,
	})
}

// GetLowStock lists store inventory at or below the low stock threshold
func (h *InventoryHandler) GetLowStock(c *gin.Context) {
	storeID, err := uuid.Parse(c.Query("store_id"))
	if err != nil {
		response.BadRequest(c, "Invalid or missing store_id")
		return
	}

	threshold, _ := strconv.Atoi(c.Query("threshold"))
	if threshold <= 0 {
		cfg, err := h.settingsService.GetPOSConfig(c.Request.Context())
		if err != nil {
			response.Error(c, err)
			return
		}
		threshold = cfg.LowStockThreshold
	}

	rows, err := h.inventoryService.GetLowStock(c.Request.Context(), storeID, threshold)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Low stock items retrieved successfully", rows)
}
