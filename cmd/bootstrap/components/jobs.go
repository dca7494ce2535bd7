package components

import (
	"context"

	"coolslate/internal/jobs"

	"go.uber.org/fx"
)

var JobsModule = fx.Module("jobs",
	fx.Provide(
		jobs.NewReclaimer,
		jobs.NewRepairDispatcher,
	),
	fx.Invoke(startJobs),
)

func startJobs(lc fx.Lifecycle, reclaimer *jobs.Reclaimer, dispatcher *jobs.RepairDispatcher) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			reclaimer.Start()
			dispatcher.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			reclaimer.Stop()
			dispatcher.Stop()
			return nil
		},
	})
}
