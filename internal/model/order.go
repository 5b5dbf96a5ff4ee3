package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status captures the lifecycle of an order. Labels are not validated
// against a transition graph: any label may follow any other, the same
// policy the back office has always had.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

type PaymentMethod string

const (
	PaymentMethodCashOnDelivery PaymentMethod = "cash_on_delivery"
	PaymentMethodCard           PaymentMethod = "card"
	PaymentMethodBankTransfer   PaymentMethod = "bank_transfer"
	// PaymentMethodSolde is "buy now, pay later": the order debt is tracked
	// on the order row until settled outside this service.
	PaymentMethodSolde PaymentMethod = "solde"
)

type Order struct {
	ID        int64   `json:"id"`
	Number    string  `json:"order_number"`
	AccountID *int64  `json:"account_id"` // nil for guest orders
	Status    Status  `json:"status"`

	PaymentStatus PaymentStatus `json:"payment_status"`
	PaymentMethod PaymentMethod `json:"payment_method"`

	TotalAmount      decimal.Decimal `json:"total_amount"`
	RemiseUsedAmount decimal.Decimal `json:"remise_used_amount"`

	// RemiseEarnedAt doubles as the award idempotency marker: once it is
	// non-null the order is never awarded again.
	RemiseEarnedAmount decimal.Decimal `json:"remise_earned_amount"`
	RemiseEarnedAt     *time.Time      `json:"remise_earned_at"`

	IsSolde     bool            `json:"is_solde"`
	SoldeAmount decimal.Decimal `json:"solde_amount"`

	AdminNotes string `json:"admin_notes,omitempty"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	ShippedAt   *time.Time `json:"shipped_at"`
	DeliveredAt *time.Time `json:"delivered_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// OrderItem carries the immutable remise snapshot written at award time.
// RemisePercentApplied historically held a percentage; it now stores the
// fixed per-unit amount that was in force when the award happened.
type OrderItem struct {
	ID          int64           `json:"id"`
	OrderID     int64           `json:"order_id"`
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int64           `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`

	RemisePercentApplied decimal.Decimal `json:"remise_percent_applied"`
	RemiseAmount         decimal.Decimal `json:"remise_amount"`
}

// OrderUpdate is the set of column changes one finalize request applies.
// Nil pointers mean "leave as is". Timestamp stamps are idempotent: a
// column already set is never overwritten.
type OrderUpdate struct {
	Status        *Status
	PaymentStatus *PaymentStatus
	AdminNotes    *string

	StampConfirmed bool
	StampShipped   bool
	StampDelivered bool
	StampCancelled bool
}

func (u OrderUpdate) Empty() bool {
	return u.Status == nil && u.PaymentStatus == nil && u.AdminNotes == nil
}

type OrderSummary struct {
	ID            int64           `json:"id"`
	Number        string          `json:"order_number"`
	Status        Status          `json:"status"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	ItemsCount    int64           `json:"items_count"`
	CreatedAt     time.Time       `json:"created_at"`
	ConfirmedAt   *time.Time      `json:"confirmed_at"`
	ShippedAt     *time.Time      `json:"shipped_at"`
	DeliveredAt   *time.Time      `json:"delivered_at"`
}

type OrderDetail struct {
	Order   Order                `json:"order"`
	Items   []OrderItem          `json:"items"`
	History []StatusHistoryEvent `json:"status_history"`
}
