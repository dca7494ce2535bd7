package jobs

import (
	"context"
	"log/slog"
	"time"

	"coolslate/internal/pkg/clock"
	"coolslate/internal/pkg/config"
	"coolslate/internal/usecase/commands"

	"github.com/cenkalti/backoff/v4"
)

// RepairDispatcher runs the daily repair assignment at the configured local
// hour.
type RepairDispatcher struct {
	scheduling commands.SchedulingCommands
	clock      clock.Clock
	hour       int
	maxFails   int
	loc        *time.Location

	cancel context.CancelFunc
	done   chan struct{}
}

func NewRepairDispatcher(scheduling commands.SchedulingCommands, clk clock.Clock, jobs config.JobsConfig, workforce config.WorkforceConfig) *RepairDispatcher {
	loc, err := time.LoadLocation(workforce.TimeZone)
	if err != nil {
		loc = time.UTC
	}
	return &RepairDispatcher{
		scheduling: scheduling,
		clock:      clk,
		hour:       jobs.DispatchHour,
		maxFails:   jobs.MaxFailuresAlert,
		loc:        loc,
	}
}

func (d *RepairDispatcher) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	d.done = make(chan struct{})
	go d.run(ctx)
}

func (d *RepairDispatcher) Stop() {
	if d.cancel != nil {
		d.cancel()
		<-d.done
	}
}

func (d *RepairDispatcher) run(ctx context.Context) {
	defer close(d.done)

	consecutiveFailures := 0
	for {
		wait := d.untilNextRun()
		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}

		if err := d.dispatchWithRetry(ctx); err != nil {
			consecutiveFailures++
			slog.Error("repair dispatch run failed",
				"consecutive_failures", consecutiveFailures,
				"error", err.Error())
			if consecutiveFailures >= d.maxFails {
				slog.Error("repair dispatcher exceeded failure threshold, operator attention required",
					"threshold", d.maxFails)
			}
			continue
		}
		consecutiveFailures = 0
	}
}

// untilNextRun returns the wait until the next dispatch hour in local time.
func (d *RepairDispatcher) untilNextRun() time.Duration {
	now := d.clock.Now().In(d.loc)
	next := time.Date(now.Year(), now.Month(), now.Day(), d.hour, 0, 0, 0, d.loc)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}

func (d *RepairDispatcher) dispatchWithRetry(ctx context.Context) error {
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	return backoff.Retry(func() error {
		_, err := d.scheduling.DispatchDueRepairs(ctx, d.clock.Now().In(d.loc))
		return err
	}, policy)
}
