package models

import "time"

// Movement types as stored by the backend.
const (
	MovementEntry      = "Entry"
	MovementExit       = "Exit"
	MovementTransfer   = "Transfer"
	MovementAdjustment = "Adjustment"
)

// MovementTypes lists every movement type for the report filters.
var MovementTypes = []string{
	MovementEntry,
	MovementExit,
	MovementTransfer,
	MovementAdjustment,
}

// Movement is a single audit entry for a product. The backend owns the
// history; when it has none, the client synthesizes entries from product
// audit fields as a presentation fallback.
type Movement struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"productId"`
	ProductName string    `json:"productName"`
	Type        string    `json:"movementType"`
	FromStatus  string    `json:"fromStatus,omitempty"`
	ToStatus    string    `json:"toStatus,omitempty"`
	Quantity    int       `json:"quantity"`
	Location    string    `json:"location,omitempty"`
	PerformedBy string    `json:"performedBy"`
	CreatedAt   time.Time `json:"createdAt"`
	Notes       string    `json:"notes,omitempty"`
}
