package internal

import (
	"github.com/shopspring/decimal"

	"github.com/hbenali/comptoir/internal/model"
)

// TransitionRequest is one finalize-order request. Empty strings mean the
// caller did not supply the field.
type TransitionRequest struct {
	Status        string
	PaymentStatus string
	Notes         string
	Actor         string
}

// TransitionPlan is what a request resolves to against the current row:
// the column changes, the history events to append (one per applied
// change), and the labels the order ends up with either way.
type TransitionPlan struct {
	Update model.OrderUpdate
	Events []model.StatusHistoryEvent

	ResolvedStatus  model.Status
	ResolvedPayment model.PaymentStatus
}

// PlanTransition resolves a request against the locked order row. It is a
// pure function: all database effects happen later, from the plan.
//
// Cash collected at delivery is payment-complete: a requested "delivered"
// status on a cash-on-delivery order with no explicit payment_status is
// treated as if the caller had also sent payment_status=paid.
func PlanTransition(o model.Order, req TransitionRequest) (TransitionPlan, error) {
	plan := TransitionPlan{
		ResolvedStatus:  o.Status,
		ResolvedPayment: o.PaymentStatus,
	}

	if req.Status != "" && model.Status(req.Status) != o.Status {
		st := model.Status(req.Status)
		plan.Update.Status = &st
		plan.ResolvedStatus = st

		switch st {
		case model.StatusConfirmed:
			plan.Update.StampConfirmed = true
		case model.StatusShipped:
			plan.Update.StampShipped = true
		case model.StatusDelivered:
			plan.Update.StampDelivered = true
		case model.StatusCancelled:
			plan.Update.StampCancelled = true
		}

		note := req.Notes
		if note == "" {
			note = "Status changed to " + req.Status
		}
		plan.Events = append(plan.Events, model.StatusHistoryEvent{
			OrderID:       o.ID,
			OldStatus:     string(o.Status),
			NewStatus:     req.Status,
			ChangedByType: req.Actor,
			Notes:         note,
		})
	}

	effective := model.PaymentStatus(req.PaymentStatus)
	if effective == "" &&
		model.Status(req.Status) == model.StatusDelivered &&
		o.PaymentMethod == model.PaymentMethodCashOnDelivery &&
		o.PaymentStatus != model.PaymentPaid {
		effective = model.PaymentPaid
	}

	if effective != "" && effective != o.PaymentStatus {
		ps := effective
		plan.Update.PaymentStatus = &ps
		plan.ResolvedPayment = ps

		note := req.Notes
		if note == "" {
			note = "Payment status changed to " + string(ps)
		}
		plan.Events = append(plan.Events, model.StatusHistoryEvent{
			OrderID:       o.ID,
			OldStatus:     model.PaymentLabelPrefix + string(o.PaymentStatus),
			NewStatus:     model.PaymentLabelPrefix + string(ps),
			ChangedByType: req.Actor,
			Notes:         note,
		})
	}

	if req.Notes != "" && req.Notes != o.AdminNotes {
		n := req.Notes
		plan.Update.AdminNotes = &n
	}

	if plan.Update.Empty() {
		return TransitionPlan{}, ErrNoChangeRequested
	}
	return plan, nil
}

// soldeEpsilon absorbs floating-point drift between a stored solde amount
// and its recomputation.
var soldeEpsilon = decimal.New(1, -6)

// SoldeAmount derives the deferred-payment debt of an order:
// max(0, round(total - used, 2)).
func SoldeAmount(total, used decimal.Decimal) decimal.Decimal {
	amount := total.Sub(used).Round(2)
	if amount.IsNegative() {
		return decimal.Zero
	}
	return amount
}

// NeedsSoldeRewrite reports whether the stored debt marker actually
// differs from the recomputed one; matching rows are left untouched.
func NeedsSoldeRewrite(o model.Order, amount decimal.Decimal) bool {
	if o.IsSolde != amount.IsPositive() {
		return true
	}
	return o.SoldeAmount.Sub(amount).Abs().GreaterThan(soldeEpsilon)
}

// AwardEligible reports whether the order, as it stands after the current
// transition, qualifies for a remise award. RemiseEarnedAt non-null means
// the order has already been awarded and never will be again.
func AwardEligible(o model.Order, resolvedPayment model.PaymentStatus, confirmed bool) bool {
	return o.AccountID != nil &&
		resolvedPayment == model.PaymentPaid &&
		confirmed &&
		o.RemiseEarnedAt == nil
}
