package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"coolslate/internal/domain/booking"
	"coolslate/internal/infra/mail"
	"coolslate/internal/pkg/clock"
	"coolslate/internal/pkg/errs"
	"coolslate/internal/pkg/metrics"
	"coolslate/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrPaymentAmountMismatch = errs.New("payment amount mismatch")
	ErrAlreadyRefunded       = errs.New("order already refunded")
)

type ConfirmPaymentResult struct {
	OrderID    uuid.UUID
	IsReplayed bool
}

type PaymentCommands interface {
	// Confirm processes a provider webhook. Duplicate deliveries return
	// IsReplayed without a second transition.
	Confirm(ctx context.Context, orderNumber string, amount int) (*ConfirmPaymentResult, error)
	Refund(ctx context.Context, orderID uuid.UUID) error
}

type paymentUseCaseImpl struct {
	uow        shared.UnitOfWork
	scheduling SchedulingCommands
	mailer     mail.Mailer
	clock      clock.Clock
	metrics    *metrics.Metrics
}

func NewPaymentUseCase(
	uow shared.UnitOfWork,
	scheduling SchedulingCommands,
	mailer mail.Mailer,
	clk clock.Clock,
	m *metrics.Metrics,
) PaymentCommands {
	return &paymentUseCaseImpl{
		uow:        uow,
		scheduling: scheduling,
		mailer:     mailer,
		clock:      clk,
		metrics:    m,
	}
}

func (u *paymentUseCaseImpl) Confirm(ctx context.Context, orderNumber string, amount int) (*ConfirmPaymentResult, error) {
	var (
		order    *booking.Order
		replayed bool
	)
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Orders().FindByNumber(ctx, tx.DB(), orderNumber)
		if err != nil {
			return errs.Mark(err, ErrOrderNotFound)
		}
		order, err = tx.Orders().FindByIDForUpdate(ctx, tx.DB(), found.ID)
		if err != nil {
			return errs.Mark(err, ErrOrderNotFound)
		}

		if err := order.ValidateConfirmPayment(amount); err != nil {
			if errors.Is(err, booking.ErrAlreadyPaid) {
				replayed = true
				return nil
			}
			if errors.Is(err, booking.ErrAmountMismatch) {
				return errs.Mark(err, ErrPaymentAmountMismatch)
			}
			return errs.Mark(err, ErrOrderConflict)
		}

		affected, err := tx.Orders().ConfirmPayment(ctx, tx.DB(), order.ID, order.NextAfterPayment())
		if err != nil {
			return err
		}
		replayed = affected == 0
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !replayed {
		u.metrics.PaymentsConfirmed.Inc()
		u.sendPaymentConfirmedMail(ctx, order)
		if order.ServiceKind.RequiresPreLock() {
			// Paid installation and maintenance orders are scheduled right
			// away; repairs wait for the daily dispatch run.
			if err := u.scheduling.ScheduleOrder(ctx, order.ID); err != nil {
				slog.Error("immediate scheduling after payment failed",
					"order", order.OrderNumber, "error", err.Error())
			}
		}
	}
	return &ConfirmPaymentResult{OrderID: order.ID, IsReplayed: replayed}, nil
}

func (u *paymentUseCaseImpl) Refund(ctx context.Context, orderID uuid.UUID) error {
	var order *booking.Order
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		order, err = tx.Orders().FindByIDForUpdate(ctx, tx.DB(), orderID)
		if err != nil {
			return errs.Mark(err, ErrOrderNotFound)
		}
		if err := order.ValidateRefund(); err != nil {
			return errs.Mark(err, ErrAlreadyRefunded)
		}

		// Refund only returns the money. Any schedule or lock the order
		// still holds is cleaned up by the cancellation that follows.
		affected, err := tx.Orders().MarkRefunded(ctx, tx.DB(), order.ID, booking.OrderPrecancel)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrAlreadyRefunded
		}
		return nil
	})
	if err != nil {
		return err
	}

	u.sendRefundMail(ctx, order)
	return nil
}

func (u *paymentUseCaseImpl) sendPaymentConfirmedMail(ctx context.Context, o *booking.Order) {
	subject := fmt.Sprintf("訂單 %s 付款成功", o.OrderNumber)
	body := fmt.Sprintf("<p>已收到訂單 %s 的款項 NT$%d，我們將為您安排服務人員。</p>", o.OrderNumber, o.TotalAmount)
	if err := u.mailer.Send(ctx, o.UserEmail, subject, body); err != nil {
		slog.Warn("failed to send payment mail", "order", o.OrderNumber, "error", err.Error())
	}
}

func (u *paymentUseCaseImpl) sendRefundMail(ctx context.Context, o *booking.Order) {
	subject := fmt.Sprintf("訂單 %s 退款完成", o.OrderNumber)
	body := fmt.Sprintf("<p>訂單 %s 的款項 NT$%d 已退回原付款方式。</p>", o.OrderNumber, o.TotalAmount)
	if err := u.mailer.Send(ctx, o.UserEmail, subject, body); err != nil {
		slog.Warn("failed to send refund mail", "order", o.OrderNumber, "error", err.Error())
	}
}
