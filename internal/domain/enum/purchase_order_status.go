package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PurchaseOrderStatus represents the lifecycle of a purchase order
type PurchaseOrderStatus int

const (
	PurchaseOrderStatusDraft     PurchaseOrderStatus = 0
	PurchaseOrderStatusOrdered   PurchaseOrderStatus = 1
	PurchaseOrderStatusPartial   PurchaseOrderStatus = 2
	PurchaseOrderStatusReceived  PurchaseOrderStatus = 3
	PurchaseOrderStatusCancelled PurchaseOrderStatus = 4
)

func (s PurchaseOrderStatus) String() string {
	return [...]string{"draft", "ordered", "partial", "received", "cancelled"}[s]
}

// CanReceive reports whether items may be received against the order
func (s PurchaseOrderStatus) CanReceive() bool {
	return s == PurchaseOrderStatusOrdered || s == PurchaseOrderStatusPartial
}

// ParsePurchaseOrderStatus maps a status string to its enum value
func ParsePurchaseOrderStatus(s string) (PurchaseOrderStatus, bool) {
	switch s {
	case "draft":
		return PurchaseOrderStatusDraft, true
	case "ordered":
		return PurchaseOrderStatusOrdered, true
	case "partial":
		return PurchaseOrderStatusPartial, true
	case "received":
		return PurchaseOrderStatusReceived, true
	case "cancelled":
		return PurchaseOrderStatusCancelled, true
	}
	return 0, false
}

func (s PurchaseOrderStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *PurchaseOrderStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = PurchaseOrderStatus(i)
		return nil
	}
	switch str {
	case "draft":
		*s = PurchaseOrderStatusDraft
	case "ordered":
		*s = PurchaseOrderStatusOrdered
	case "partial":
		*s = PurchaseOrderStatusPartial
	case "received":
		*s = PurchaseOrderStatusReceived
	case "cancelled":
		*s = PurchaseOrderStatusCancelled
	}
	return nil
}

func (s PurchaseOrderStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *PurchaseOrderStatus) Scan(value interface{}) error {
	if value == nil {
		*s = PurchaseOrderStatusDraft
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = PurchaseOrderStatus(v)
	case int:
		*s = PurchaseOrderStatus(v)
	}
	return nil
}
