package model

import "time"

const (
	ActorAdmin    = "admin"
	ActorCustomer = "customer"
	ActorSystem   = "system"
)

// PaymentLabelPrefix marks history events that record a payment-status
// change, so both kinds of transition share one audit stream.
const PaymentLabelPrefix = "payment:"

// StatusHistoryEvent is append-only: rows are inserted once and never
// touched again.
type StatusHistoryEvent struct {
	ID            int64     `json:"-"`
	OrderID       int64     `json:"-"`
	OldStatus     string    `json:"old_status"`
	NewStatus     string    `json:"new_status"`
	ChangedByType string    `json:"changed_by"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"timestamp"`
}
