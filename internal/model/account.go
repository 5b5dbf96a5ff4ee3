package model

import "github.com/shopspring/decimal"

const (
	// AccountTypeClient is the baseline classification used when an account
	// has no explicit type on record.
	AccountTypeClient  = "Client"
	AccountTypeArtisan = "Artisan/Promoteur"
)

type Account struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	RemiseBalance decimal.Decimal `json:"remise_balance"`
}

// RemiseBreakdown is the calculator output: a per-item snapshot of the
// remise rate and amount plus their total, all rounded to 2 decimals.
type RemiseBreakdown struct {
	Total decimal.Decimal       `json:"total"`
	Items []RemiseBreakdownItem `json:"items"`
}

type RemiseBreakdownItem struct {
	ItemID  int64           `json:"order_item_id"`
	PerUnit decimal.Decimal `json:"remise_percent_applied"`
	Amount  decimal.Decimal `json:"remise_amount"`
}

// ItemRemiseRate is one order item joined with the product remise rate that
// applies to the buyer's classification.
type ItemRemiseRate struct {
	ItemID   int64
	Quantity int64
	PerUnit  decimal.Decimal
}
