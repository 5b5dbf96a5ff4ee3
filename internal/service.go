package internal

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/hbenali/comptoir/internal/model"
)

type IService interface {
	UpdateOrderStatus(ctx context.Context, orderID int64, req TransitionRequest) (StatusUpdateResult, error)
	CancelOrder(ctx context.Context, orderID int64, reason string) (StatusUpdateResult, error)
	GetOrders(ctx context.Context, accountID int64) ([]model.OrderSummary, error)
	GetOrderDetail(ctx context.Context, orderID int64) (model.OrderDetail, error)
	GetRemiseBalance(ctx context.Context, accountID int64) (decimal.Decimal, error)
}

type StatusUpdateResult struct {
	OrderID            int64               `json:"order_id"`
	Status             model.Status        `json:"status"`
	PaymentStatus      model.PaymentStatus `json:"payment_status"`
	EarnedRemiseAmount decimal.Decimal     `json:"earned_remise_amount"`
}

type Service struct {
	Store      IStore
	Calculator IBreakdownCalculator
	logger     *zap.SugaredLogger
}

func NewService(store IStore, calculator IBreakdownCalculator, logger *zap.SugaredLogger) *Service {
	return &Service{Store: store, Calculator: calculator, logger: logger}
}

// UpdateOrderStatus applies one finalize-order request: status and
// payment-status changes, derived timestamps, history events, the solde
// ledger, and (when the order becomes eligible) the one-time remise award.
// Everything runs in a single transaction; any failure rolls it all back.
func (s Service) UpdateOrderStatus(ctx context.Context, orderID int64, req TransitionRequest) (StatusUpdateResult, error) {
	res := StatusUpdateResult{OrderID: orderID, EarnedRemiseAmount: decimal.Zero}

	err := s.Store.FinalizeOrder(ctx, orderID, func(tx OrderTx, o model.Order) error {
		return s.finalize(ctx, tx, o, req, &res)
	})
	if err != nil {
		return StatusUpdateResult{}, err
	}

	return res, nil
}

// CancelOrder is the customer-facing cancellation: it refuses orders that
// already shipped, arrived, or were cancelled, then runs the same
// transition pipeline with actor-kind "customer".
func (s Service) CancelOrder(ctx context.Context, orderID int64, reason string) (StatusUpdateResult, error) {
	if reason == "" {
		reason = "Order cancelled by customer"
	}
	res := StatusUpdateResult{OrderID: orderID, EarnedRemiseAmount: decimal.Zero}

	err := s.Store.FinalizeOrder(ctx, orderID, func(tx OrderTx, o model.Order) error {
		switch o.Status {
		case model.StatusShipped, model.StatusDelivered, model.StatusCancelled:
			return ErrCancelNotAllowed
		}
		req := TransitionRequest{
			Status: string(model.StatusCancelled),
			Notes:  reason,
			Actor:  model.ActorCustomer,
		}
		return s.finalize(ctx, tx, o, req, &res)
	})
	if err != nil {
		return StatusUpdateResult{}, err
	}

	return res, nil
}

func (s Service) finalize(ctx context.Context, tx OrderTx, o model.Order, req TransitionRequest, res *StatusUpdateResult) error {
	plan, err := PlanTransition(o, req)
	if err != nil {
		return err
	}

	// History first, so every applied change has its event before the row
	// update commits.
	for _, ev := range plan.Events {
		if err = tx.AppendHistory(ctx, ev); err != nil {
			return err
		}
	}

	if err = tx.ApplyOrderUpdate(ctx, o.ID, plan.Update); err != nil {
		return err
	}

	confirmed := o.ConfirmedAt != nil || plan.Update.StampConfirmed

	if o.PaymentMethod == model.PaymentMethodSolde && confirmed {
		amount := SoldeAmount(o.TotalAmount, o.RemiseUsedAmount)
		if NeedsSoldeRewrite(o, amount) {
			if err = tx.UpdateSolde(ctx, o.ID, amount, amount.IsPositive()); err != nil {
				return err
			}
		}
	}

	if AwardEligible(o, plan.ResolvedPayment, confirmed) {
		earned, err := s.award(ctx, tx, o)
		if err != nil {
			return err
		}
		res.EarnedRemiseAmount = earned
	}

	res.Status = plan.ResolvedStatus
	res.PaymentStatus = plan.ResolvedPayment
	return nil
}

// award computes and credits the remise exactly once. The conditional
// MarkRemiseEarned write is the arbiter: if it reports zero affected rows a
// concurrent award already happened, and this one stops silently.
func (s Service) award(ctx context.Context, tx OrderTx, o model.Order) (decimal.Decimal, error) {
	classification, err := tx.AccountClassification(ctx, *o.AccountID)
	if err != nil {
		return decimal.Zero, err
	}

	bd, err := s.Calculator.ComputeOrderItemRemiseBreakdown(ctx, tx, o.ID, classification)
	if err != nil {
		return decimal.Zero, err
	}

	won, err := tx.MarkRemiseEarned(ctx, o.ID, bd.Total)
	if err != nil {
		return decimal.Zero, err
	}
	if !won {
		return decimal.Zero, nil
	}

	for _, it := range bd.Items {
		if err = tx.SnapshotItemRemise(ctx, it.ItemID, it.PerUnit, it.Amount); err != nil {
			return decimal.Zero, err
		}
	}

	if bd.Total.IsPositive() {
		if err = tx.CreditRemiseBalance(ctx, *o.AccountID, bd.Total); err != nil {
			return decimal.Zero, err
		}
	}

	s.logger.Infow("remise awarded", "order_id", o.ID, "account_id", *o.AccountID, "amount", bd.Total)
	return bd.Total, nil
}

func (s Service) GetOrders(ctx context.Context, accountID int64) ([]model.OrderSummary, error) {
	orders, err := s.Store.GetOrders(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, ErrNoRecords
	}
	return orders, nil
}

func (s Service) GetOrderDetail(ctx context.Context, orderID int64) (model.OrderDetail, error) {
	return s.Store.GetOrderDetail(ctx, orderID)
}

func (s Service) GetRemiseBalance(ctx context.Context, accountID int64) (decimal.Decimal, error) {
	return s.Store.GetRemiseBalance(ctx, accountID)
}
