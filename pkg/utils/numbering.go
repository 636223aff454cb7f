package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateSaleNumber generates a sale number like TRX20260830169123456.
// The millisecond suffix keeps numbers unique across terminals without
// a shared counter.
func GenerateSaleNumber(at time.Time) string {
	return fmt.Sprintf("TRX%s%d", at.Format("20060102"), at.UnixMilli()%1000000000)
}

// GenerateTransferNumber generates a stock transfer number
func GenerateTransferNumber(at time.Time) string {
	return fmt.Sprintf("TRF%s%d", at.Format("20060102"), at.UnixMilli()%1000000000)
}

// GeneratePurchaseOrderNumber generates a purchase order number
func GeneratePurchaseOrderNumber(at time.Time) string {
	return fmt.Sprintf("PO%s%d", at.Format("20060102"), at.UnixMilli()%1000000000)
}

// GenerateSKU generates a product SKU with a category prefix
func GenerateSKU(prefix string) string {
	if prefix == "" {
		prefix = "PRD"
	}
	return strings.ToUpper(prefix) + "-" + strings.ToUpper(uuid.New().String()[:8])
}

// GenerateCustomerCode generates a customer code
func GenerateCustomerCode() string {
	return "CUST-" + strings.ToUpper(uuid.New().String()[:8])
}
