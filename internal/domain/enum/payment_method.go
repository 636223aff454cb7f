package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// PaymentMethod represents how a sale was paid
type PaymentMethod int

const (
	PaymentMethodCash     PaymentMethod = 0
	PaymentMethodCard     PaymentMethod = 1
	PaymentMethodQRIS     PaymentMethod = 2
	PaymentMethodEWallet  PaymentMethod = 3
	PaymentMethodTransfer PaymentMethod = 4
)

func (m PaymentMethod) String() string {
	return [...]string{"cash", "card", "qris", "ewallet", "transfer"}[m]
}

// Label returns the cashier-facing display name for the method
func (m PaymentMethod) Label() string {
	return [...]string{"Cash", "Debit/Credit Card", "QRIS", "E-Wallet", "Bank Transfer"}[m]
}

// RequiresTender reports whether the cashier enters a tendered amount
// and change is given. Non-cash methods settle at the exact total.
func (m PaymentMethod) RequiresTender() bool {
	return m == PaymentMethodCash
}

func (m PaymentMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *PaymentMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = PaymentMethod(i)
		return nil
	}
	switch str {
	case "cash":
		*m = PaymentMethodCash
	case "card":
		*m = PaymentMethodCard
	case "qris":
		*m = PaymentMethodQRIS
	case "ewallet":
		*m = PaymentMethodEWallet
	case "transfer":
		*m = PaymentMethodTransfer
	default:
		return fmt.Errorf("invalid payment method %q", str)
	}
	return nil
}

func (m PaymentMethod) Value() (driver.Value, error) {
	return int64(m), nil
}

func (m *PaymentMethod) Scan(value interface{}) error {
	if value == nil {
		*m = PaymentMethodCash
		return nil
	}
	switch v := value.(type) {
	case int64:
		*m = PaymentMethod(v)
	case int:
		*m = PaymentMethod(v)
	}
	return nil
}
