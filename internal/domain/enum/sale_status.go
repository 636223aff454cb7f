package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// SaleStatus represents the status of a sale
type SaleStatus int

const (
	SaleStatusCompleted SaleStatus = 0
	SaleStatusRefunded  SaleStatus = 1
	SaleStatusCancelled SaleStatus = 2
)

func (s SaleStatus) String() string {
	return [...]string{"completed", "refunded", "cancelled"}[s]
}

// ParseSaleStatus maps a status string to its enum value
func ParseSaleStatus(s string) (SaleStatus, bool) {
	switch s {
	case "completed":
		return SaleStatusCompleted, true
	case "refunded":
		return SaleStatusRefunded, true
	case "cancelled":
		return SaleStatusCancelled, true
	}
	return 0, false
}

func (s SaleStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *SaleStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = SaleStatus(i)
		return nil
	}
	switch str {
	case "completed":
		*s = SaleStatusCompleted
	case "refunded":
		*s = SaleStatusRefunded
	case "cancelled":
		*s = SaleStatusCancelled
	}
	return nil
}

func (s SaleStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *SaleStatus) Scan(value interface{}) error {
	if value == nil {
		*s = SaleStatusCompleted
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = SaleStatus(v)
	case int:
		*s = SaleStatus(v)
	}
	return nil
}

// PaymentStatus represents the settlement status of a sale payment
type PaymentStatus int

const (
	PaymentStatusPending   PaymentStatus = 0
	PaymentStatusCompleted PaymentStatus = 1
	PaymentStatusFailed    PaymentStatus = 2
	PaymentStatusRefunded  PaymentStatus = 3
)

func (s PaymentStatus) String() string {
	return [...]string{"pending", "completed", "failed", "refunded"}[s]
}

func (s PaymentStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *PaymentStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = PaymentStatus(i)
		return nil
	}
	switch str {
	case "pending":
		*s = PaymentStatusPending
	case "completed":
		*s = PaymentStatusCompleted
	case "failed":
		*s = PaymentStatusFailed
	case "refunded":
		*s = PaymentStatusRefunded
	}
	return nil
}

func (s PaymentStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *PaymentStatus) Scan(value interface{}) error {
	if value == nil {
		*s = PaymentStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = PaymentStatus(v)
	case int:
		*s = PaymentStatus(v)
	}
	return nil
}
