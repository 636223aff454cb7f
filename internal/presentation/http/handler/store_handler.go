package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/danuwijaya/tokopos-api/internal/application/service"
	"github.com/danuwijaya/tokopos-api/internal/presentation/http/dto/request"
	"github.com/danuwijaya/tokopos-api/internal/presentation/http/dto/response"
	"github.com/danuwijaya/tokopos-api/pkg/pagination"
)

// StoreHandler handles store and warehouse HTTP requests
type StoreHandler struct {
	storeService *service.StoreService
}

// NewStoreHandler creates a new store handler
func NewStoreHandler(storeService *service.StoreService) *StoreHandler {
	return &StoreHandler{storeService: storeService}
}

func listParams(c *gin.Context) (*pagination.PaginationParams, string) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))
	return &pagination.PaginationParams{Page: page, PerPage: perPage}, c.Query("search")
}

// ListStores handles listing stores
func (h *StoreHandler) ListStores(c *gin.Context) {
	params, search := listParams(c)

	stores, total, err := h.storeService.ListStores(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(stores, pagination.NewPagination(params.Page, params.PerPage, total))
	response.SuccessWithPagination(c, 200, "Stores retrieved successfully", result)
}

// CreateStore handles creating a store
func (h *StoreHandler) CreateStore(c *gin.Context) {
	var req request.StoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	store, err := h.storeService.CreateStore(c.Request.Context(), &service.StoreInput{
		Code:     req.Code,
		Name:     req.Name,
		Address:  req.Address,
		Phone:    req.Phone,
		IsActive: req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Store created successfully", store)
}

// GetStore handles getting a single store
func (h *StoreHandler) GetStore(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid store ID")
		return
	}

	store, err := h.storeService.GetStore(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Store retrieved successfully", store)
}

// UpdateStore handles updating a store
func (h *StoreHandler) UpdateStore(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid store ID")
		return
	}

	var req request.StoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	store, err := h.storeService.UpdateStore(c.Request.Context(), id, &service.StoreInput{
		Code:     req.Code,
		Name:     req.Name,
		Address:  req.Address,
		Phone:    req.Phone,
		IsActive: req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Store updated successfully", store)
}

// DeleteStore handles deleting a store
func (h *StoreHandler) DeleteStore(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid store ID")
		return
	}

	if err := h.storeService.DeleteStore(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Store deleted successfully", nil)
}

// ListWarehouses handles listing warehouses
func (h *StoreHandler) ListWarehouses(c *gin.Context) {
	params, search := listParams(c)

	warehouses, total, err := h.storeService.ListWarehouses(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(warehouses, pagination.NewPagination(params.Page, params.PerPage, total))
	response.SuccessWithPagination(c, 200, "Warehouses retrieved successfully", result)
}

// CreateWarehouse handles creating a warehouse
func (h *StoreHandler) CreateWarehouse(c *gin.Context) {
	var req request.WarehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	warehouse, err := h.storeService.CreateWarehouse(c.Request.Context(), &service.WarehouseInput{
		Code:     req.Code,
		Name:     req.Name,
		Address:  req.Address,
		Phone:    req.Phone,
		IsActive: req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Warehouse created successfully", warehouse)
}

// GetWarehouse handles getting a single warehouse
func (h *StoreHandler) GetWarehouse(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid warehouse ID")
		return
	}

	warehouse, err := h.storeService.GetWarehouse(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Warehouse retrieved successfully", warehouse)
}

// UpdateWarehouse handles updating a warehouse
func (h *StoreHandler) UpdateWarehouse(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid warehouse ID")
		return
	}

	var req request.WarehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	warehouse, err := h.storeService.UpdateWarehouse(c.Request.Context(), id, &service.WarehouseInput{
		Code:     req.Code,
		Name:     req.Name,
		Address:  req.Address,
		Phone:    req.Phone,
		IsActive: req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Warehouse updated successfully", warehouse)
}

// DeleteWarehouse handles deleting a warehouse
func (h *StoreHandler) DeleteWarehouse(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid warehouse ID")
		return
	}

	if err := h.storeService.DeleteWarehouse(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Warehouse deleted successfully", nil)
}
