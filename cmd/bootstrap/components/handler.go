package components

import (
	"coolslate/internal/handler"
	"coolslate/internal/handler/api"
	"coolslate/internal/handler/middleware"
	"coolslate/internal/pkg/config"
	"coolslate/internal/usecase/commands"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewOrderHandler,
		api.NewCalendarHandler,
		api.NewPaymentHandler,
		NewAdminHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAdminHandler(
	paymentCommands commands.PaymentCommands,
	schedulingCommands commands.SchedulingCommands,
	completionCommands commands.CompletionCommands,
	cfg config.ReportsConfig,
) *api.AdminHandler {
	return api.NewAdminHandler(paymentCommands, schedulingCommands, completionCommands, cfg.MaxSizeBytes)
}
