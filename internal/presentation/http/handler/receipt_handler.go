package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/danuwijaya/tokopos-api/internal/application/service"
	"github.com/danuwijaya/tokopos-api/internal/presentation/http/dto/response"
)

// ReceiptHandler handles receipt printing HTTP requests
type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// Status returns the printer connection status
func (h *ReceiptHandler) Status(c *gin.Context) {
	response.OK(c, "Printer status retrieved successfully", h.receiptService.GetStatus())
}

// TestPrint prints a short test slip to verify the printer
func (h *ReceiptHandler) TestPrint(c *gin.Context) {
	receipt, err := h.receiptService.TestPrint(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Test receipt printed successfully", receipt)
}

// Get returns the structured receipt for a sale without printing it
func (h *ReceiptHandler) Get(c *gin.Context) {
	saleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	receipt, err := h.receiptService.BuildReceipt(c.Request.Context(), saleID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt retrieved successfully", receipt)
}

// Print sends the receipt for a sale to the configured printer. A
// printer failure still returns the receipt so the cashier can hand
// over a screen copy.
func (h *ReceiptHandler) Print(c *gin.Context) {
	saleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	receipt, err := h.receiptService.PrintSaleReceipt(c.Request.Context(), saleID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt printed successfully", receipt)
}

// Render returns the raw ESC/POS bytes for a sale receipt so a client
// can drive its own printer
func (h *ReceiptHandler) Render(c *gin.Context) {
	saleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	data, err := h.receiptService.RenderReceipt(c.Request.Context(), saleID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Data(http.StatusOK, "application/octet-stream", data)
}
