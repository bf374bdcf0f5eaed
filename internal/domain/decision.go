package domain

import (
	"encoding/json"
	"fmt"
)

// Decision is the tri-state moderation outcome for a Paper.
//
// The backend encodes it as a nullable boolean named "processed":
// absent or null means no decision yet, true means accepted, false
// means rejected. The zero value is DecisionPending so records decoded
// without the field default correctly.
type Decision int

const (
	DecisionPending Decision = iota
	DecisionAccepted
	DecisionRejected
)

// String implements fmt.Stringer for display and logs.
func (d Decision) String() string {
	switch d {
	case DecisionAccepted:
		return "accepted"
	case DecisionRejected:
		return "rejected"
	default:
		return "pending"
	}
}

// UnmarshalJSON decodes the backend's nullable-bool encoding.
func (d *Decision) UnmarshalJSON(data []byte) error {
	var v *bool
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("decode decision: %w", err)
	}
	switch {
	case v == nil:
		*d = DecisionPending
	case *v:
		*d = DecisionAccepted
	default:
		*d = DecisionRejected
	}
	return nil
}

// MarshalJSON encodes the decision back into the wire form.
func (d Decision) MarshalJSON() ([]byte, error) {
	switch d {
	case DecisionAccepted:
		return json.Marshal(true)
	case DecisionRejected:
		return json.Marshal(false)
	default:
		return json.Marshal(nil)
	}
}
