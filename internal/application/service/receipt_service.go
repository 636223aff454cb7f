package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"strconv"

	"github.com/google/uuid"

	"github.com/danuwijaya/tokopos-api/internal/domain/entity"
	"github.com/danuwijaya/tokopos-api/internal/domain/repository"
	"github.com/danuwijaya/tokopos-api/pkg/apperror"
	"github.com/danuwijaya/tokopos-api/pkg/printer"
)

// ReceiptService handles receipt composition and thermal printing
type ReceiptService struct {
	printer         printer.Printer
	saleRepo        repository.SaleRepository
	settingsService *SettingsService
	printerType     string
}

// NewReceiptService creates a new receipt service
func NewReceiptService(
	p printer.Printer,
	saleRepo repository.SaleRepository,
	settingsService *SettingsService,
	printerType string,
) *ReceiptService {
	return &ReceiptService{
		printer:         p,
		saleRepo:        saleRepo,
		settingsService: settingsService,
		printerType:     printerType,
	}
}

// PrinterStatus returns the current printer status information
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status
func (s *ReceiptService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint sends a test page to the printer. Returns the receipt data
// so the handler can return it as JSON when the printer is disabled.
func (s *ReceiptService) TestPrint(ctx context.Context) (*entity.Receipt, error) {
	cfg, err := s.settingsService.GetPOSConfig(ctx)
	if err != nil {
		return nil, err
	}

	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			StoreName: cfg.StoreName,
			Extra:     cfg.ReceiptHeader,
		},
		SaleNumber: "TEST-001",
		Date:       "Test Date",
		Cashier:    "System",
		Items: []entity.ReceiptItem{
			{Name: "Test Item 1", Quantity: 1, UnitPrice: 10000, Total: 10000},
			{Name: "Test Item 2", Quantity: 2, UnitPrice: 5000, Total: 10000},
		},
		SubTotal: 20000,
		Total:    20000,
		Paid:     20000,
		Footer:   cfg.ReceiptFooter,
	}

	data := s.formatReceipt(receipt, cfg.CurrencySymbol)
	if err := s.printer.Print(data); err != nil {
		return receipt, fmt.Errorf("test print failed: %w", err)
	}

	return receipt, nil
}

// BuildReceipt composes a printable receipt from a persisted sale
func (s *ReceiptService) BuildReceipt(ctx context.Context, saleID uuid.UUID) (*entity.Receipt, error) {
	sale, err := s.saleRepo.GetWithDetails(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}

	cfg, err := s.settingsService.GetPOSConfig(ctx)
	if err != nil {
		return nil, err
	}

	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			StoreName: cfg.StoreName,
			Extra:     cfg.ReceiptHeader,
		},
		SaleNumber:     sale.SaleNumber,
		Date:           sale.SaleDate.Format("2006-01-02 15:04"),
		SubTotal:       sale.Subtotal,
		Tax:            sale.TaxAmount,
		Discount:       sale.DiscountAmount,
		PointsValue:    float64(sale.PointsRedeemed) * cfg.LoyaltyPointValue,
		Total:          sale.TotalAmount,
		Paid:           sale.PaidAmount,
		Change:         sale.ChangeAmount,
		PointsEarned:   sale.PointsEarned,
		PointsRedeemed: sale.PointsRedeemed,
		Footer:         cfg.ReceiptFooter,
	}

	if sale.Store != nil {
		if sale.Store.Address != nil {
			receipt.Header.Address = *sale.Store.Address
		}
		if sale.Store.Phone != nil {
			receipt.Header.Phone = *sale.Store.Phone
		}
	}
	if sale.Cashier != nil {
		receipt.Cashier = sale.Cashier.FirstName
	}
	if sale.Customer != nil {
		receipt.Customer = sale.Customer.Name
	}

	for _, item := range sale.Items {
		receipt.Items = append(receipt.Items, entity.ReceiptItem{
			Name:         item.ProductName,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			LineDiscount: item.LineDiscount,
			Total:        item.LineTotal,
		})
	}

	for _, payment := range sale.Payments {
		receipt.Payments = append(receipt.Payments,
			fmt.Sprintf("%s %s", payment.Method.Label(), formatAmount(cfg.CurrencySymbol, payment.Amount)))
	}

	return receipt, nil
}

// PrintSaleReceipt composes and prints the receipt for a sale. The
// receipt data is returned even when printing fails so the POS can
// fall back to on-screen display.
func (s *ReceiptService) PrintSaleReceipt(ctx context.Context, saleID uuid.UUID) (*entity.Receipt, error) {
	receipt, err := s.BuildReceipt(ctx, saleID)
	if err != nil {
		return nil, err
	}

	cfg, err := s.settingsService.GetPOSConfig(ctx)
	if err != nil {
		return receipt, err
	}

	data := s.formatReceipt(receipt, cfg.CurrencySymbol)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (sale %s): %v", saleID, err)
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}

	return receipt, nil
}

// RenderReceipt returns the raw ESC/POS bytes for a sale receipt
func (s *ReceiptService) RenderReceipt(ctx context.Context, saleID uuid.UUID) ([]byte, error) {
	receipt, err := s.BuildReceipt(ctx, saleID)
	if err != nil {
		return nil, err
	}
	cfg, err := s.settingsService.GetPOSConfig(ctx)
	if err != nil {
		return nil, err
	}
	return s.formatReceipt(receipt, cfg.CurrencySymbol), nil
}

// formatReceipt converts a Receipt into ESC/POS bytes
func (s *ReceiptService) formatReceipt(r *entity.Receipt, symbol string) []byte {
	doc := printer.NewDocument(32) // 58mm paper = 32 chars

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.StoreName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}
	if r.Header.Extra != "" {
		doc.Text(r.Header.Extra)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	doc.KeyValue("Receipt:", r.SaleNumber).
		KeyValue("Date:", r.Date)

	if r.Cashier != "" {
		doc.KeyValue("Cashier:", r.Cashier)
	}
	if r.Customer != "" {
		doc.KeyValue("Customer:", r.Customer)
	}

	doc.Separator('-')

	// Items
	for _, item := range r.Items {
		doc.ItemLine(item.Quantity, item.Name, formatAmount("", item.Total))
		if item.Quantity > 1 {
			doc.TextF("  @ %s each", formatAmount("", item.UnitPrice))
		}
		if item.LineDiscount > 0 {
			doc.TextF("  disc -%s", formatAmount("", item.LineDiscount))
		}
	}

	doc.Separator('-')

	// Totals
	doc.KeyValue("Subtotal:", formatAmount(symbol, r.SubTotal))
	if r.Tax > 0 {
		doc.KeyValue("Tax:", formatAmount(symbol, r.Tax))
	}
	if r.Discount > 0 {
		doc.KeyValue("Discount:", "-"+formatAmount(symbol, r.Discount))
	}
	if r.PointsValue > 0 {
		doc.KeyValue("Points:", "-"+formatAmount(symbol, r.PointsValue))
	}
	doc.SetBold(true).
		KeyValue("TOTAL:", formatAmount(symbol, r.Total)).
		SetBold(false)

	doc.KeyValue("Paid:", formatAmount(symbol, r.Paid))
	if r.Change > 0 {
		doc.KeyValue("Change:", formatAmount(symbol, r.Change))
	}
	for _, payment := range r.Payments {
		doc.Text("  " + payment)
	}

	if r.PointsEarned > 0 || r.PointsRedeemed > 0 {
		doc.Separator('-')
		if r.PointsRedeemed > 0 {
			doc.KeyValue("Points used:", strconv.Itoa(r.PointsRedeemed))
		}
		if r.PointsEarned > 0 {
			doc.KeyValue("Points earned:", strconv.Itoa(r.PointsEarned))
		}
	}

	doc.Separator('-')

	// Footer
	footer := r.Footer
	if footer == "" {
		footer = "Terima kasih!"
	}
	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text(footer).
		LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}

// formatAmount renders a Rupiah amount with dot thousand separators,
// e.g. "Rp 111.000"
func formatAmount(symbol string, v float64) string {
	rounded := int64(math.Round(v))
	negative := rounded < 0
	if negative {
		rounded = -rounded
	}

	digits := strconv.FormatInt(rounded, 10)
	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, d)
	}

	result := string(out)
	if negative {
		result = "-" + result
	}
	if symbol != "" {
		result = symbol + " " + result
	}
	return result
}
