package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// TransferStatus represents the lifecycle of a stock transfer
type TransferStatus int

const (
	TransferStatusPending   TransferStatus = 0
	TransferStatusApproved  TransferStatus = 1
	TransferStatusInTransit TransferStatus = 2
	TransferStatusCompleted TransferStatus = 3
	TransferStatusCancelled TransferStatus = 4
)

func (s TransferStatus) String() string {
	return [...]string{"pending", "approved", "in_transit", "completed", "cancelled"}[s]
}

// CanTransitionTo reports whether the transfer may move to the given status.
// Stock leaves the source on approval and arrives at the destination on
// completion, so transitions only move forward or cancel before completion.
func (s TransferStatus) CanTransitionTo(next TransferStatus) bool {
	switch s {
	case TransferStatusPending:
		return next == TransferStatusApproved || next == TransferStatusCancelled
	case TransferStatusApproved:
		return next == TransferStatusInTransit || next == TransferStatusCancelled
	case TransferStatusInTransit:
		return next == TransferStatusCompleted
	default:
		return false
	}
}

// ParseTransferStatus maps a status string to its enum value
func ParseTransferStatus(s string) (TransferStatus, bool) {
	switch s {
	case "pending":
		return TransferStatusPending, true
	case "approved":
		return TransferStatusApproved, true
	case "in_transit":
		return TransferStatusInTransit, true
	case "completed":
		return TransferStatusCompleted, true
	case "cancelled":
		return TransferStatusCancelled, true
	}
	return 0, false
}

func (s TransferStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *TransferStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = TransferStatus(i)
		return nil
	}
	switch str {
	case "pending":
		*s = TransferStatusPending
	case "approved":
		*s = TransferStatusApproved
	case "in_transit":
		*s = TransferStatusInTransit
	case "completed":
		*s = TransferStatusCompleted
	case "cancelled":
		*s = TransferStatusCancelled
	}
	return nil
}

func (s TransferStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *TransferStatus) Scan(value interface{}) error {
	if value == nil {
		*s = TransferStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = TransferStatus(v)
	case int:
		*s = TransferStatus(v)
	}
	return nil
}
