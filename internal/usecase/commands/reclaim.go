package commands

import (
	"context"
	"fmt"
	"log/slog"

	"coolslate/internal/infra/mail"
	"coolslate/internal/pkg/clock"
	"coolslate/internal/pkg/config"
	"coolslate/internal/pkg/metrics"
	"coolslate/internal/usecase/shared"
)

type ReclaimResult struct {
	ClearedOrderRefs int
	ExpiredLocks     int64
	ReclaimedOrders  int
}

type ReclaimCommands interface {
	// ReclaimExpired sweeps expired slot locks and abandoned unpaid orders,
	// returning their capacity to the pool.
	ReclaimExpired(ctx context.Context) (*ReclaimResult, error)
}

type reclaimUseCaseImpl struct {
	uow     shared.UnitOfWork
	mailer  mail.Mailer
	clock   clock.Clock
	jobs    config.JobsConfig
	metrics *metrics.Metrics
}

func NewReclaimUseCase(
	uow shared.UnitOfWork,
	mailer mail.Mailer,
	clk clock.Clock,
	jobs config.JobsConfig,
	m *metrics.Metrics,
) ReclaimCommands {
	return &reclaimUseCaseImpl{
		uow:     uow,
		mailer:  mailer,
		clock:   clk,
		jobs:    jobs,
		metrics: m,
	}
}

func (u *reclaimUseCaseImpl) ReclaimExpired(ctx context.Context) (*ReclaimResult, error) {
	now := u.clock.Now()
	result := &ReclaimResult{}
	var reclaimed []shared.StaleOrder

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Detach booking slots from fully expired lock groups before
		// deleting the rows, so nothing keeps pointing at capacity it lost.
		cleared, err := tx.BookingSlots().ClearExpiredLockRefs(ctx, tx.DB(), now)
		if err != nil {
			return err
		}
		result.ClearedOrderRefs = int(cleared)

		expired, err := tx.Locks().DeleteExpired(ctx, tx.DB(), now)
		if err != nil {
			return err
		}
		result.ExpiredLocks = expired

		// Lock-holding orders are only deleted once every candidate slot
		// lost its lock; repairs go purely by age. Slot rows cascade.
		stale, err := tx.Orders().DeleteStaleUnpaid(ctx, tx.DB(), now.Add(-u.jobs.UnpaidOrderMaxAge), now)
		if err != nil {
			return err
		}
		result.ReclaimedOrders = len(stale)
		reclaimed = stale
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.metrics.LocksExpired.Add(float64(result.ExpiredLocks))
	u.metrics.OrdersReclaimed.Add(float64(result.ReclaimedOrders))
	for _, s := range reclaimed {
		u.sendOrderExpiredMail(ctx, s)
	}
	if result.ExpiredLocks > 0 || result.ReclaimedOrders > 0 {
		slog.Info("reclaim sweep finished",
			"expired_locks", result.ExpiredLocks,
			"reclaimed_orders", result.ReclaimedOrders,
			"cleared_refs", result.ClearedOrderRefs)
	}
	return result, nil
}

func (u *reclaimUseCaseImpl) sendOrderExpiredMail(ctx context.Context, s shared.StaleOrder) {
	subject := fmt.Sprintf("訂單 %s 已逾期取消", s.OrderNumber)
	body := fmt.Sprintf("<p>訂單 %s 因逾時未付款已自動取消，歡迎重新預約。</p>", s.OrderNumber)
	if err := u.mailer.Send(ctx, s.UserEmail, subject, body); err != nil {
		slog.Warn("failed to send expiry mail", "order", s.OrderNumber, "error", err.Error())
	}
}
