package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// InventoryTransactionType classifies a stock movement ledger entry
type InventoryTransactionType int

const (
	TransactionTypeIn          InventoryTransactionType = 0
	TransactionTypeOut         InventoryTransactionType = 1
	TransactionTypeAdjustment  InventoryTransactionType = 2
	TransactionTypeTransferIn  InventoryTransactionType = 3
	TransactionTypeTransferOut InventoryTransactionType = 4
)

func (t InventoryTransactionType) String() string {
	return [...]string{"in", "out", "adjustment", "transfer_in", "transfer_out"}[t]
}

// ParseInventoryTransactionType maps a type string to its enum value
func ParseInventoryTransactionType(s string) (InventoryTransactionType, bool) {
	switch s {
	case "in":
		return TransactionTypeIn, true
	case "out":
		return TransactionTypeOut, true
	case "adjustment":
		return TransactionTypeAdjustment, true
	case "transfer_in":
		return TransactionTypeTransferIn, true
	case "transfer_out":
		return TransactionTypeTransferOut, true
	}
	return 0, false
}

func (t InventoryTransactionType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *InventoryTransactionType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = InventoryTransactionType(i)
		return nil
	}
	switch str {
	case "in":
		*t = TransactionTypeIn
	case "out":
		*t = TransactionTypeOut
	case "adjustment":
		*t = TransactionTypeAdjustment
	case "transfer_in":
		*t = TransactionTypeTransferIn
	case "transfer_out":
		*t = TransactionTypeTransferOut
	default:
		return fmt.Errorf("invalid inventory transaction type %q", str)
	}
	return nil
}

func (t InventoryTransactionType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *InventoryTransactionType) Scan(value interface{}) error {
	if value == nil {
		*t = TransactionTypeIn
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = InventoryTransactionType(v)
	case int:
		*t = InventoryTransactionType(v)
	}
	return nil
}
