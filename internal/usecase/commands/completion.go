package commands

import (
	"context"
	"fmt"
	"log/slog"

	"coolslate/internal/domain/booking"
	"coolslate/internal/infra/mail"
	"coolslate/internal/infra/reportstore"
	"coolslate/internal/pkg/clock"
	"coolslate/internal/pkg/errs"
	"coolslate/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrReportAlreadyUploaded = errs.New("completion report already uploaded")

type CompletionCommands interface {
	// Complete stores the technician's PDF report and closes the order.
	Complete(ctx context.Context, orderID uuid.UUID, report []byte) (uuid.UUID, error)
}

type completionUseCaseImpl struct {
	uow    shared.UnitOfWork
	store  *reportstore.LocalStore
	mailer mail.Mailer
	clock  clock.Clock
}

func NewCompletionUseCase(
	uow shared.UnitOfWork,
	store *reportstore.LocalStore,
	mailer mail.Mailer,
	clk clock.Clock,
) CompletionCommands {
	return &completionUseCaseImpl{
		uow:    uow,
		store:  store,
		mailer: mailer,
		clock:  clk,
	}
}

func (u *completionUseCaseImpl) Complete(ctx context.Context, orderID uuid.UUID, report []byte) (uuid.UUID, error) {
	var (
		order    *booking.Order
		reportID uuid.UUID
	)
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		order, err = tx.Orders().FindByIDForUpdate(ctx, tx.DB(), orderID)
		if err != nil {
			return errs.Mark(err, ErrOrderNotFound)
		}
		if err := order.ValidateComplete(); err != nil {
			return errs.Mark(err, ErrOrderConflict)
		}
		if _, err := tx.Reports().FindByOrder(ctx, tx.DB(), order.ID); err == nil {
			return ErrReportAlreadyUploaded
		}

		path, err := u.store.Save(order.ID, report)
		if err != nil {
			return err
		}

		reportID, err = tx.Reports().Create(ctx, tx.DB(), &shared.CompletionReport{
			ID:       uuid.New(),
			OrderID:  order.ID,
			FilePath: path,
			FileSize: int64(len(report)),
		})
		if err != nil {
			return err
		}
		return tx.Orders().UpdateStatus(ctx, tx.DB(), order.ID, booking.OrderCompleted)
	})
	if err != nil {
		return uuid.Nil, err
	}

	u.sendCompletionMail(ctx, order)
	return reportID, nil
}

func (u *completionUseCaseImpl) sendCompletionMail(ctx context.Context, o *booking.Order) {
	subject := fmt.Sprintf("訂單 %s 服務完成", o.OrderNumber)
	body := fmt.Sprintf("<p>訂單 %s 的服務已完成，感謝您的支持。</p>", o.OrderNumber)
	if err := u.mailer.Send(ctx, o.UserEmail, subject, body); err != nil {
		slog.Warn("failed to send completion mail", "order", o.OrderNumber, "error", err.Error())
	}
}
