package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// DiscountType represents how a discount amount is computed
type DiscountType int

const (
	DiscountTypePercentage DiscountType = 0
	DiscountTypeFixed      DiscountType = 1
)

func (t DiscountType) String() string {
	return [...]string{"percentage", "fixed"}[t]
}

func (t DiscountType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *DiscountType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = DiscountType(i)
		return nil
	}
	switch str {
	case "percentage":
		*t = DiscountTypePercentage
	case "fixed":
		*t = DiscountTypeFixed
	default:
		return fmt.Errorf("invalid discount type %q", str)
	}
	return nil
}

func (t DiscountType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *DiscountType) Scan(value interface{}) error {
	if value == nil {
		*t = DiscountTypePercentage
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = DiscountType(v)
	case int:
		*t = DiscountType(v)
	}
	return nil
}
