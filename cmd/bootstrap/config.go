package bootstrap

import (
	"coolslate/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.WorkforceConfig { return cfg.Workforce },
		func(cfg config.Config) config.PaymentConfig { return cfg.Payment },
		func(cfg config.Config) config.JobsConfig { return cfg.Jobs },
		func(cfg config.Config) config.ReportsConfig { return cfg.Reports },
		func(cfg config.Config) config.GeocodeConfig { return cfg.Geocode },
		func(cfg config.Config) config.MailConfig { return cfg.Mail },
	),
)
