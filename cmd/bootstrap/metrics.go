package bootstrap

import (
	"coolslate/internal/pkg/metrics"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		func() *metrics.Metrics {
			return metrics.New("coolslate")
		},
	),
)
