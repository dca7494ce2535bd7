package jobs

import (
	"context"
	"log/slog"
	"time"

	"coolslate/internal/pkg/config"
	"coolslate/internal/usecase/commands"

	"github.com/cenkalti/backoff/v4"
)

// Reclaimer periodically sweeps expired slot locks and abandoned unpaid
// orders so held capacity flows back into availability.
type Reclaimer struct {
	reclaim  commands.ReclaimCommands
	interval time.Duration
	maxFails int

	cancel context.CancelFunc
	done   chan struct{}
}

func NewReclaimer(reclaim commands.ReclaimCommands, cfg config.JobsConfig) *Reclaimer {
	return &Reclaimer{
		reclaim:  reclaim,
		interval: cfg.ReclaimInterval,
		maxFails: cfg.MaxFailuresAlert,
	}
}

func (r *Reclaimer) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.done = make(chan struct{})
	go r.run(ctx)
}

func (r *Reclaimer) Stop() {
	if r.cancel != nil {
		r.cancel()
		<-r.done
	}
}

func (r *Reclaimer) run(ctx context.Context) {
	defer close(r.done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	consecutiveFailures := 0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.sweepWithRetry(ctx); err != nil {
				consecutiveFailures++
				slog.Error("reclaim sweep failed",
					"consecutive_failures", consecutiveFailures,
					"error", err.Error())
				if consecutiveFailures >= r.maxFails {
					slog.Error("reclaimer exceeded failure threshold, operator attention required",
						"threshold", r.maxFails)
				}
				continue
			}
			consecutiveFailures = 0
		}
	}
}

func (r *Reclaimer) sweepWithRetry(ctx context.Context) error {
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	return backoff.Retry(func() error {
		_, err := r.reclaim.ReclaimExpired(ctx)
		return err
	}, policy)
}
