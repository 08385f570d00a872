package model

import "time"

// OperatorAction is an append-only record of a mutating admin operation,
// kept locally so remote changes can be traced back to an operator.
type OperatorAction struct {
	ID        int64     `json:"id"`
	Operator  string    `json:"operator"`
	Action    string    `json:"action"`   // e.g. bulletin.approve, source.toggle
	Resource  string    `json:"resource"` // remote resource path
	RecordID  *int64    `json:"record_id,omitempty"`
	Detail    *string   `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
