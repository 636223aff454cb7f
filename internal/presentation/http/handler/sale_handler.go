package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/danuwijaya/tokopos-api/internal/application/service"
	"github.com/danuwijaya/tokopos-api/internal/domain/enum"
	"github.com/danuwijaya/tokopos-api/internal/domain/repository"
	"github.com/danuwijaya/tokopos-api/internal/presentation/http/dto/request"
	"github.com/danuwijaya/tokopos-api/internal/presentation/http/dto/response"
	"github.com/danuwijaya/tokopos-api/pkg/pagination"
)

// SaleHandler handles POS checkout and sale history HTTP requests
type SaleHandler struct {
	saleService *service.SaleService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// Create handles a checkout submission. Totals are recomputed server
// side, so the request carries quantities and payments, not prices.
func (h *SaleHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	items := make([]service.SaleItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = service.SaleItemInput{
			ProductID:    item.ProductID,
			Quantity:     item.Quantity,
			LineDiscount: item.LineDiscount,
		}
	}

	payments := make([]service.SalePaymentInput, len(req.Payments))
	for i, p := range req.Payments {
		payments[i] = service.SalePaymentInput{
			Method:    p.Method,
			Amount:    p.Amount,
			Reference: p.Reference,
		}
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), &service.CreateSaleInput{
		StoreID:        req.StoreID,
		UserID:         *userID,
		CustomerID:     req.CustomerID,
		DiscountCode:   req.DiscountCode,
		RedeemPoints:   req.RedeemPoints,
		PointsToRedeem: req.PointsToRedeem,
		Items:          items,
		Payments:       payments,
		ExpectedTotal:  req.ExpectedTotal,
		Notes:          req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale completed successfully", sale)
}

// List handles listing sale history
func (h *SaleHandler) List(c *gin.Context) {
	var filter request.SaleFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.SaleFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search: filter.Search,
	}

	if filter.StoreID != "" {
		if id, err := uuid.Parse(filter.StoreID); err == nil {
			params.StoreID = &id
		}
	}
	if filter.CustomerID != "" {
		if id, err := uuid.Parse(filter.CustomerID); err == nil {
			params.CustomerID = &id
		}
	}
	if filter.Status != "" {
		status, ok := enum.ParseSaleStatus(filter.Status)
		if !ok {
			response.BadRequest(c, "Invalid sale status")
			return
		}
		params.Status = &status
	}
	if filter.DateFrom != "" {
		if t, err := time.Parse("2006-01-02", filter.DateFrom); err == nil {
			params.DateFrom = &t
		}
	}
	if filter.DateTo != "" {
		if t, err := time.Parse("2006-01-02", filter.DateTo); err == nil {
			end := t.AddDate(0, 0, 1)
			params.DateTo = &end
		}
	}

	sales, total, err := h.saleService.ListSales(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(sales, pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total))
	response.SuccessWithPagination(c, 200, "Sales retrieved successfully", result)
}

// Get handles getting a single sale with its items and payments
func (h *SaleHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.saleService.GetSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale retrieved successfully", sale)
}

// Refund voids a completed sale and returns its stock to the store
func (h *SaleHandler) Refund(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.saleService.RefundSale(c.Request.Context(), id, *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale refunded successfully", sale)
}

// GetByNumber looks a sale up by its receipt number
func (h *SaleHandler) GetByNumber(c *gin.Context) {
	number := c.Param("number")
	if number == "" {
		response.BadRequest(c, "Sale number is required")
		return
	}

	sale, err := h.saleService.GetSaleByNumber(c.Request.Context(), number)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale retrieved successfully", sale)
}

// Stats returns today / this week / this month sale aggregates
func (h *SaleHandler) Stats(c *gin.Context) {
	var storeID *uuid.UUID
	if s := c.Query("store_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			response.BadRequest(c, "Invalid store_id")
			return
		}
		storeID = &id
	}

	stats, err := h.saleService.GetSaleStats(c.Request.Context(), storeID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale stats retrieved successfully", stats)
}
