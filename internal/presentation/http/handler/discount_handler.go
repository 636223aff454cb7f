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

// DiscountHandler handles discount-related HTTP requests
type DiscountHandler struct {
	discountService *service.DiscountService
}

// NewDiscountHandler creates a new discount handler
func NewDiscountHandler(discountService *service.DiscountService) *DiscountHandler {
	return &DiscountHandler{discountService: discountService}
}

// List handles listing discounts
func (h *DiscountHandler) List(c *gin.Context) {
	params, search := listParams(c)
	activeOnly, _ := strconv.ParseBool(c.Query("active_only"))

	discounts, total, err := h.discountService.ListDiscounts(c.Request.Context(), params, search, activeOnly)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(discounts, pagination.NewPagination(params.Page, params.PerPage, total))
	response.SuccessWithPagination(c, 200, "Discounts retrieved successfully", result)
}

// ListActive lists the discounts currently usable at the till
func (h *DiscountHandler) ListActive(c *gin.Context) {
	var storeID *uuid.UUID
	if s := c.Query("store_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			response.BadRequest(c, "Invalid store_id")
			return
		}
		storeID = &id
	}

	discounts, err := h.discountService.ListActiveDiscounts(c.Request.Context(), storeID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Active discounts retrieved successfully", discounts)
}

// Create handles creating a discount
func (h *DiscountHandler) Create(c *gin.Context) {
	var req request.CreateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	discount, err := h.discountService.CreateDiscount(c.Request.Context(), &service.CreateDiscountInput{
		Code:             req.Code,
		Name:             req.Name,
		Description:      req.Description,
		Type:             req.Type,
		Value:            req.Value,
		MinPurchase:      req.MinPurchase,
		MaxDiscount:      req.MaxDiscount,
		ApplicableTo:     req.ApplicableTo,
		CustomerID:       req.CustomerID,
		StoreID:          req.StoreID,
		UsageLimit:       req.UsageLimit,
		PerCustomerLimit: req.PerCustomerLimit,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		IsActive:         req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Discount created successfully", discount)
}

// Get handles getting a single discount
func (h *DiscountHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid discount ID")
		return
	}

	discount, err := h.discountService.GetDiscount(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Discount retrieved successfully", discount)
}

// Update handles updating a discount
func (h *DiscountHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid discount ID")
		return
	}

	var req request.UpdateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	discount, err := h.discountService.UpdateDiscount(c.Request.Context(), id, &service.UpdateDiscountInput{
		Name:             req.Name,
		Description:      req.Description,
		Value:            req.Value,
		MinPurchase:      req.MinPurchase,
		MaxDiscount:      req.MaxDiscount,
		UsageLimit:       req.UsageLimit,
		PerCustomerLimit: req.PerCustomerLimit,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		IsActive:         req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Discount updated successfully", discount)
}

// Delete handles deleting a discount
func (h *DiscountHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid discount ID")
		return
	}

	if err := h.discountService.DeleteDiscount(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Discount deleted successfully", nil)
}

// Validate checks a discount code against an in-progress cart and
// returns the amount it would take off
func (h *DiscountHandler) Validate(c *gin.Context) {
	var req request.ValidateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.discountService.ValidateDiscount(c.Request.Context(), &service.ValidateDiscountInput{
		Code:       req.Code,
		StoreID:    req.StoreID,
		CustomerID: req.CustomerID,
		Subtotal:   req.Subtotal,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Discount is valid", gin.H{
		"discount":        result.Discount,
		"discount_amount": result.DiscountAmount,
	})
}
