package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/danuwijaya/tokopos-api/internal/application/service"
	"github.com/danuwijaya/tokopos-api/internal/presentation/http/dto/request"
	"github.com/danuwijaya/tokopos-api/internal/presentation/http/dto/response"
)

// StorageLocationHandler handles warehouse storage location HTTP requests
type StorageLocationHandler struct {
	locationService *service.StorageLocationService
}

// NewStorageLocationHandler creates a new storage location handler
func NewStorageLocationHandler(locationService *service.StorageLocationService) *StorageLocationHandler {
	return &StorageLocationHandler{locationService: locationService}
}

// List handles listing the locations of a warehouse
func (h *StorageLocationHandler) List(c *gin.Context) {
	warehouseID, err := uuid.Parse(c.Query("warehouse_id"))
	if err != nil {
		response.BadRequest(c, "Invalid or missing warehouse_id")
		return
	}

	locations, err := h.locationService.ListLocations(c.Request.Context(), warehouseID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Storage locations retrieved successfully", locations)
}

// Create handles creating a storage location
func (h *StorageLocationHandler) Create(c *gin.Context) {
	var req request.CreateStorageLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	location, err := h.locationService.CreateLocation(c.Request.Context(), &service.StorageLocationInput{
		WarehouseID: req.WarehouseID,
		ParentID:    req.ParentID,
		Code:        req.Code,
		Name:        req.Name,
		Kind:        req.Kind,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Storage location created successfully", location)
}

// Get handles getting a single storage location
func (h *StorageLocationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid location ID")
		return
	}

	location, err := h.locationService.GetLocation(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Storage location retrieved successfully", location)
}

// Update handles updating a storage location
func (h *StorageLocationHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid location ID")
		return
	}

	var req request.UpdateStorageLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	location, err := h.locationService.UpdateLocation(c.Request.Context(), id, &service.UpdateLocationInput{
		Name:     req.Name,
		Kind:     req.Kind,
		IsActive: req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Storage location updated successfully", location)
}

// Delete handles deleting a storage location
func (h *StorageLocationHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid location ID")
		return
	}

	if err := h.locationService.DeleteLocation(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Storage location deleted successfully", nil)
}
