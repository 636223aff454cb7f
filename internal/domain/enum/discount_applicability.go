package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// DiscountApplicability restricts which customers may use a discount
type DiscountApplicability int

const (
	ApplicableToAll              DiscountApplicability = 0
	ApplicableToMembers          DiscountApplicability = 1
	ApplicableToSpecificCustomer DiscountApplicability = 2
)

func (a DiscountApplicability) String() string {
	return [...]string{"all", "member", "specific_customer"}[a]
}

func (a DiscountApplicability) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *DiscountApplicability) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*a = DiscountApplicability(i)
		return nil
	}
	switch str {
	case "all":
		*a = ApplicableToAll
	case "member":
		*a = ApplicableToMembers
	case "specific_customer":
		*a = ApplicableToSpecificCustomer
	default:
		return fmt.Errorf("invalid discount applicability %q", str)
	}
	return nil
}

func (a DiscountApplicability) Value() (driver.Value, error) {
	return int64(a), nil
}

func (a *DiscountApplicability) Scan(value interface{}) error {
	if value == nil {
		*a = ApplicableToAll
		return nil
	}
	switch v := value.(type) {
	case int64:
		*a = DiscountApplicability(v)
	case int:
		*a = DiscountApplicability(v)
	}
	return nil
}
