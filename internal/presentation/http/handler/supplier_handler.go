package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/danuwijaya/tokopos-api/internal/application/service"
	"github.com/danuwijaya/tokopos-api/internal/presentation/http/dto/request"
	"github.com/danuwijaya/tokopos-api/internal/presentation/http/dto/response"
	"github.com/danuwijaya/tokopos-api/pkg/pagination"
)

// SupplierHandler handles supplier-related HTTP requests
type SupplierHandler struct {
	supplierService *service.SupplierService
}

// NewSupplierHandler creates a new supplier handler
func NewSupplierHandler(supplierService *service.SupplierService) *SupplierHandler {
	return &SupplierHandler{supplierService: supplierService}
}

// List handles listing suppliers
func (h *SupplierHandler) List(c *gin.Context) {
	params, search := listParams(c)

	suppliers, total, err := h.supplierService.ListSuppliers(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(suppliers, pagination.NewPagination(params.Page, params.PerPage, total))
	response.SuccessWithPagination(c, 200, "Suppliers retrieved successfully", result)
}

// Create handles creating a supplier
func (h *SupplierHandler) Create(c *gin.Context) {
	var req request.SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	supplier, err := h.supplierService.CreateSupplier(c.Request.Context(), supplierInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Supplier created successfully", supplier)
}

// Get handles getting a single supplier
func (h *SupplierHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid supplier ID")
		return
	}

	supplier, err := h.supplierService.GetSupplier(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Supplier retrieved successfully", supplier)
}

// Update handles updating a supplier
func (h *SupplierHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid supplier ID")
		return
	}

	var req request.SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	supplier, err := h.supplierService.UpdateSupplier(c.Request.Context(), id, supplierInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Supplier updated successfully", supplier)
}

// Delete handles deleting a supplier
func (h *SupplierHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid supplier ID")
		return
	}

	if err := h.supplierService.DeleteSupplier(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Supplier deleted successfully", nil)
}

func supplierInput(req *request.SupplierRequest) *service.SupplierInput {
	return &service.SupplierInput{
		Code:          req.Code,
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		IsActive:      req.IsActive,
	}
}
