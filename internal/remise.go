package internal

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/hbenali/comptoir/internal/model"
)

// IBreakdownCalculator computes the per-item remise snapshot for an order.
// It must be side-effect free: the award engine persists the result itself,
// and only after its compare-and-set write succeeds.
type IBreakdownCalculator interface {
	ComputeOrderItemRemiseBreakdown(ctx context.Context, tx OrderTx, orderID int64, classification string) (model.RemiseBreakdown, error)
}

// RemiseCalculator derives the breakdown from the product remise rates
// visible inside the finalize transaction. The rate column is chosen by the
// buyer's classification; the amount is the per-unit rate times quantity,
// rounded to 2 decimals per item.
type RemiseCalculator struct{}

func NewRemiseCalculator() *RemiseCalculator {
	return &RemiseCalculator{}
}

func (RemiseCalculator) ComputeOrderItemRemiseBreakdown(ctx context.Context, tx OrderTx, orderID int64, classification string) (model.RemiseBreakdown, error) {
	rates, err := tx.ItemRemiseRates(ctx, orderID, classification)
	if err != nil {
		return model.RemiseBreakdown{}, err
	}

	bd := model.RemiseBreakdown{Total: decimal.Zero}
	for _, r := range rates {
		amount := r.PerUnit.Mul(decimal.NewFromInt(r.Quantity)).Round(2)
		bd.Items = append(bd.Items, model.RemiseBreakdownItem{
			ItemID:  r.ItemID,
			PerUnit: r.PerUnit.Round(2),
			Amount:  amount,
		})
		bd.Total = bd.Total.Add(amount)
	}
	bd.Total = bd.Total.Round(2)

	return bd, nil
}
