package test

import (
	"context"
	"errors"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/hbenali/comptoir/internal"
	mock_internal "github.com/hbenali/comptoir/internal/mock"
	"github.com/hbenali/comptoir/internal/model"
)

// decEq matches decimal arguments by value rather than representation, so
// 900 and 900.00 compare equal.
type decEq struct{ d decimal.Decimal }

func (m decEq) Matches(x interface{}) bool {
	v, ok := x.(decimal.Decimal)
	return ok && v.Equal(m.d)
}

func (m decEq) String() string { return "is decimal " + m.d.String() }

var _ = Describe("Service", func() {
	var (
		ctrl  *gomock.Controller
		store *mock_internal.MockIStore
		tx    *mock_internal.MockOrderTx
		calc  *mock_internal.MockIBreakdownCalculator
		srv   internal.IService

		ctx       context.Context
		accountID int64
		now       time.Time
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())

		logger, err := zap.NewDevelopment()
		Expect(err).ShouldNot(HaveOccurred())

		store = mock_internal.NewMockIStore(ctrl)
		tx = mock_internal.NewMockOrderTx(ctrl)
		calc = mock_internal.NewMockIBreakdownCalculator(ctrl)
		srv = internal.NewService(store, calc, logger.Sugar())

		ctx = context.Background()
		accountID = 7
		now = time.Now()
	})
	AfterEach(func() {
		ctrl.Finish()
	})

	finalizeWith := func(o model.Order) {
		store.EXPECT().FinalizeOrder(ctx, o.ID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int64, fn internal.FinalizeFunc) error {
				return fn(tx, o)
			})
	}

	Context("UpdateOrderStatus", func() {
		It("awards the remise once the order turns paid", func() {
			order := model.Order{
				ID:            42,
				AccountID:     &accountID,
				Status:        model.StatusConfirmed,
				PaymentStatus: model.PaymentUnpaid,
				PaymentMethod: model.PaymentMethodCard,
				TotalAmount:   decimal.NewFromInt(1000),
				ConfirmedAt:   &now,
			}
			total := decimal.NewFromFloat(30.50)
			breakdown := model.RemiseBreakdown{
				Total: total,
				Items: []model.RemiseBreakdownItem{
					{ItemID: 101, PerUnit: decimal.NewFromFloat(2.50), Amount: decimal.NewFromFloat(12.50)},
					{ItemID: 102, PerUnit: decimal.NewFromInt(6), Amount: decimal.NewFromInt(18)},
				},
			}

			finalizeWith(order)
			tx.EXPECT().AppendHistory(ctx, gomock.Any()).Return(nil)
			tx.EXPECT().ApplyOrderUpdate(ctx, int64(42), gomock.Any()).Return(nil)
			tx.EXPECT().AccountClassification(ctx, accountID).Return(model.AccountTypeClient, nil)
			calc.EXPECT().ComputeOrderItemRemiseBreakdown(ctx, tx, int64(42), model.AccountTypeClient).Return(breakdown, nil)
			tx.EXPECT().MarkRemiseEarned(ctx, int64(42), decEq{total}).Return(true, nil)
			tx.EXPECT().SnapshotItemRemise(ctx, int64(101), decEq{decimal.NewFromFloat(2.50)}, decEq{decimal.NewFromFloat(12.50)}).Return(nil)
			tx.EXPECT().SnapshotItemRemise(ctx, int64(102), decEq{decimal.NewFromInt(6)}, decEq{decimal.NewFromInt(18)}).Return(nil)
			tx.EXPECT().CreditRemiseBalance(ctx, accountID, decEq{total}).Return(nil)

			res, err := srv.UpdateOrderStatus(ctx, 42, internal.TransitionRequest{
				PaymentStatus: string(model.PaymentPaid),
				Actor:         model.ActorAdmin,
			})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.EarnedRemiseAmount.Equal(total)).To(BeTrue())
			Expect(res.PaymentStatus).To(Equal(model.PaymentPaid))
		})
		It("never re-awards an order whose marker is set", func() {
			order := model.Order{
				ID:             42,
				AccountID:      &accountID,
				Status:         model.StatusShipped,
				PaymentStatus:  model.PaymentPaid,
				PaymentMethod:  model.PaymentMethodCard,
				ConfirmedAt:    &now,
				RemiseEarnedAt: &now,
			}

			finalizeWith(order)
			tx.EXPECT().AppendHistory(ctx, gomock.Any()).Return(nil)
			tx.EXPECT().ApplyOrderUpdate(ctx, int64(42), gomock.Any()).Return(nil)

			res, err := srv.UpdateOrderStatus(ctx, 42, internal.TransitionRequest{
				Status: string(model.StatusDelivered),
				Actor:  model.ActorAdmin,
			})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.EarnedRemiseAmount.IsZero()).To(BeTrue())
		})
		It("stops silently when a concurrent award got there first", func() {
			order := model.Order{
				ID:            42,
				AccountID:     &accountID,
				Status:        model.StatusConfirmed,
				PaymentStatus: model.PaymentUnpaid,
				PaymentMethod: model.PaymentMethodCard,
				ConfirmedAt:   &now,
			}
			total := decimal.NewFromInt(30)

			finalizeWith(order)
			tx.EXPECT().AppendHistory(ctx, gomock.Any()).Return(nil)
			tx.EXPECT().ApplyOrderUpdate(ctx, int64(42), gomock.Any()).Return(nil)
			tx.EXPECT().AccountClassification(ctx, accountID).Return(model.AccountTypeClient, nil)
			calc.EXPECT().ComputeOrderItemRemiseBreakdown(ctx, tx, int64(42), model.AccountTypeClient).
				Return(model.RemiseBreakdown{Total: total}, nil)
			tx.EXPECT().MarkRemiseEarned(ctx, int64(42), decEq{total}).Return(false, nil)

			res, err := srv.UpdateOrderStatus(ctx, 42, internal.TransitionRequest{
				PaymentStatus: string(model.PaymentPaid),
				Actor:         model.ActorAdmin,
			})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.EarnedRemiseAmount.IsZero()).To(BeTrue())
		})
		It("does not credit a zero-amount award", func() {
			order := model.Order{
				ID:            42,
				AccountID:     &accountID,
				Status:        model.StatusConfirmed,
				PaymentStatus: model.PaymentUnpaid,
				PaymentMethod: model.PaymentMethodCard,
				ConfirmedAt:   &now,
			}

			finalizeWith(order)
			tx.EXPECT().AppendHistory(ctx, gomock.Any()).Return(nil)
			tx.EXPECT().ApplyOrderUpdate(ctx, int64(42), gomock.Any()).Return(nil)
			tx.EXPECT().AccountClassification(ctx, accountID).Return(model.AccountTypeClient, nil)
			calc.EXPECT().ComputeOrderItemRemiseBreakdown(ctx, tx, int64(42), model.AccountTypeClient).
				Return(model.RemiseBreakdown{Total: decimal.Zero}, nil)
			tx.EXPECT().MarkRemiseEarned(ctx, int64(42), decEq{decimal.Zero}).Return(true, nil)

			res, err := srv.UpdateOrderStatus(ctx, 42, internal.TransitionRequest{
				PaymentStatus: string(model.PaymentPaid),
				Actor:         model.ActorAdmin,
			})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.EarnedRemiseAmount.IsZero()).To(BeTrue())
		})
		It("skips the award for guest orders", func() {
			order := model.Order{
				ID:            42,
				Status:        model.StatusConfirmed,
				PaymentStatus: model.PaymentUnpaid,
				PaymentMethod: model.PaymentMethodCard,
				ConfirmedAt:   &now,
			}

			finalizeWith(order)
			tx.EXPECT().AppendHistory(ctx, gomock.Any()).Return(nil)
			tx.EXPECT().ApplyOrderUpdate(ctx, int64(42), gomock.Any()).Return(nil)

			res, err := srv.UpdateOrderStatus(ctx, 42, internal.TransitionRequest{
				PaymentStatus: string(model.PaymentPaid),
				Actor:         model.ActorAdmin,
			})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.EarnedRemiseAmount.IsZero()).To(BeTrue())
		})
		It("auto-pays a delivered cash-on-delivery order with both events", func() {
			order := model.Order{
				ID:            42,
				Status:        model.StatusShipped,
				PaymentStatus: model.PaymentUnpaid,
				PaymentMethod: model.PaymentMethodCashOnDelivery,
				ConfirmedAt:   &now,
			}

			var events []model.StatusHistoryEvent
			finalizeWith(order)
			tx.EXPECT().AppendHistory(ctx, gomock.Any()).DoAndReturn(
				func(_ context.Context, ev model.StatusHistoryEvent) error {
					events = append(events, ev)
					return nil
				}).Times(2)
			tx.EXPECT().ApplyOrderUpdate(ctx, int64(42), gomock.Any()).Return(nil)

			res, err := srv.UpdateOrderStatus(ctx, 42, internal.TransitionRequest{
				Status: string(model.StatusDelivered),
				Actor:  model.ActorAdmin,
			})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.PaymentStatus).To(Equal(model.PaymentPaid))

			Expect(events).To(HaveLen(2))
			Expect(events[0].NewStatus).To(Equal("delivered"))
			Expect(events[1].OldStatus).To(Equal("payment:unpaid"))
			Expect(events[1].NewStatus).To(Equal("payment:paid"))
		})
		It("records the solde debt on a confirmed deferred-payment order", func() {
			order := model.Order{
				ID:               42,
				AccountID:        &accountID,
				Status:           model.StatusPending,
				PaymentStatus:    model.PaymentUnpaid,
				PaymentMethod:    model.PaymentMethodSolde,
				TotalAmount:      decimal.NewFromInt(1000),
				RemiseUsedAmount: decimal.NewFromInt(100),
			}

			finalizeWith(order)
			tx.EXPECT().AppendHistory(ctx, gomock.Any()).Return(nil)
			tx.EXPECT().ApplyOrderUpdate(ctx, int64(42), gomock.Any()).Return(nil)
			tx.EXPECT().UpdateSolde(ctx, int64(42), decEq{decimal.NewFromInt(900)}, true).Return(nil)

			res, err := srv.UpdateOrderStatus(ctx, 42, internal.TransitionRequest{
				Status: string(model.StatusConfirmed),
				Actor:  model.ActorAdmin,
			})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.Status).To(Equal(model.StatusConfirmed))
		})
		It("leaves a stable solde row untouched", func() {
			order := model.Order{
				ID:               42,
				AccountID:        &accountID,
				Status:           model.StatusConfirmed,
				PaymentStatus:    model.PaymentUnpaid,
				PaymentMethod:    model.PaymentMethodSolde,
				TotalAmount:      decimal.NewFromInt(1000),
				RemiseUsedAmount: decimal.NewFromInt(100),
				IsSolde:          true,
				SoldeAmount:      decimal.NewFromInt(900),
				ConfirmedAt:      &now,
			}

			finalizeWith(order)
			tx.EXPECT().ApplyOrderUpdate(ctx, int64(42), gomock.Any()).Return(nil)

			_, err := srv.UpdateOrderStatus(ctx, 42, internal.TransitionRequest{
				Notes: "relance client",
				Actor: model.ActorAdmin,
			})
			Expect(err).ShouldNot(HaveOccurred())
		})
		It("surfaces NoChangeRequested", func() {
			order := model.Order{ID: 42, Status: model.StatusPending, PaymentStatus: model.PaymentUnpaid}

			finalizeWith(order)

			_, err := srv.UpdateOrderStatus(ctx, 42, internal.TransitionRequest{Actor: model.ActorAdmin})
			Expect(errors.Is(err, internal.ErrNoChangeRequested)).To(BeTrue())
		})
		It("propagates calculator failures so the transaction rolls back", func() {
			order := model.Order{
				ID:            42,
				AccountID:     &accountID,
				Status:        model.StatusConfirmed,
				PaymentStatus: model.PaymentUnpaid,
				PaymentMethod: model.PaymentMethodCard,
				ConfirmedAt:   &now,
			}

			finalizeWith(order)
			tx.EXPECT().AppendHistory(ctx, gomock.Any()).Return(nil)
			tx.EXPECT().ApplyOrderUpdate(ctx, int64(42), gomock.Any()).Return(nil)
			tx.EXPECT().AccountClassification(ctx, accountID).Return(model.AccountTypeClient, nil)
			calc.EXPECT().ComputeOrderItemRemiseBreakdown(ctx, tx, int64(42), model.AccountTypeClient).
				Return(model.RemiseBreakdown{}, errors.New("some error"))

			_, err := srv.UpdateOrderStatus(ctx, 42, internal.TransitionRequest{
				PaymentStatus: string(model.PaymentPaid),
				Actor:         model.ActorAdmin,
			})
			Expect(err).Should(HaveOccurred())
		})
	})

	Context("CancelOrder", func() {
		It("cancels a pending order as the customer", func() {
			order := model.Order{ID: 42, Status: model.StatusPending, PaymentStatus: model.PaymentUnpaid}

			var ev model.StatusHistoryEvent
			finalizeWith(order)
			tx.EXPECT().AppendHistory(ctx, gomock.Any()).DoAndReturn(
				func(_ context.Context, e model.StatusHistoryEvent) error {
					ev = e
					return nil
				})
			tx.EXPECT().ApplyOrderUpdate(ctx, int64(42), gomock.Any()).Return(nil)

			res, err := srv.CancelOrder(ctx, 42, "")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.Status).To(Equal(model.StatusCancelled))
			Expect(ev.ChangedByType).To(Equal(model.ActorCustomer))
			Expect(ev.Notes).To(Equal("Order cancelled by customer"))
		})
		It("refuses to cancel a shipped order", func() {
			order := model.Order{ID: 42, Status: model.StatusShipped, PaymentStatus: model.PaymentUnpaid}

			finalizeWith(order)

			_, err := srv.CancelOrder(ctx, 42, "changed my mind")
			Expect(errors.Is(err, internal.ErrCancelNotAllowed)).To(BeTrue())
		})
	})

	Context("Queries", func() {
		It("maps an empty order list to ErrNoRecords", func() {
			store.EXPECT().GetOrders(ctx, accountID).Return(nil, nil)

			_, err := srv.GetOrders(ctx, accountID)
			Expect(errors.Is(err, internal.ErrNoRecords)).To(BeTrue())
		})
		It("passes order lists through", func() {
			store.EXPECT().GetOrders(ctx, accountID).Return([]model.OrderSummary{{ID: 42}}, nil)

			orders, err := srv.GetOrders(ctx, accountID)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(orders).To(HaveLen(1))
		})
	})
})
