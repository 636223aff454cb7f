package entity

// ReceiptHeader holds the store header printed at the top of a receipt
type ReceiptHeader struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Extra     string `json:"extra,omitempty"`
}

// ReceiptItem represents a single line item on a receipt
type ReceiptItem struct {
	Name         string  `json:"name"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unit_price"`
	LineDiscount float64 `json:"line_discount,omitempty"`
	Total        float64 `json:"total"`
}

// Receipt is a value object representing a printable receipt. It is
// not a database entity; it is composed from sale data at print time.
type Receipt struct {
	Header         ReceiptHeader `json:"header"`
	SaleNumber     string        `json:"sale_number"`
	Date           string        `json:"date"`
	Cashier        string        `json:"cashier,omitempty"`
	Customer       string        `json:"customer,omitempty"`
	Items          []ReceiptItem `json:"items"`
	SubTotal       float64       `json:"sub_total"`
	Tax            float64       `json:"tax"`
	Discount       float64       `json:"discount"`
	PointsValue    float64       `json:"points_value"`
	Total          float64       `json:"total"`
	Paid           float64       `json:"paid"`
	Change         float64       `json:"change"`
	Payments       []string      `json:"payments,omitempty"`
	PointsEarned   int           `json:"points_earned,omitempty"`
	PointsRedeemed int           `json:"points_redeemed,omitempty"`
	Footer         string        `json:"footer,omitempty"`
}
