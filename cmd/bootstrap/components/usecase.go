package components

import (
	"coolslate/internal/pkg/clock"
	"coolslate/internal/usecase/commands"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		commands.NewOrderUseCase,
		commands.NewPaymentUseCase,
		commands.NewSchedulingUseCase,
		commands.NewCompletionUseCase,
		commands.NewReclaimUseCase,
	),
)
