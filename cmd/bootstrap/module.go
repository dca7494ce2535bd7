package bootstrap

import (
	"coolslate/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	MetricsModule,
	components.PersistenceModule,
	components.CollaboratorModule,
	components.UseCaseModule,
	components.HandlerModule,
	components.JobsModule,
)
