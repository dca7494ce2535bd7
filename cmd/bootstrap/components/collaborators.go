package components

import (
	"coolslate/internal/infra/geocode"
	"coolslate/internal/infra/mail"
	"coolslate/internal/infra/reportstore"

	"go.uber.org/fx"
)

// CollaboratorModule wires the external services the booking flows talk to.
var CollaboratorModule = fx.Module("collaborators",
	fx.Provide(
		fx.Annotate(
			geocode.NewGoogleGeocoder,
			fx.As(new(geocode.Geocoder)),
		),
		geocode.NewServiceArea,
		fx.Annotate(
			mail.NewResendMailer,
			fx.As(new(mail.Mailer)),
		),
		reportstore.NewLocalStore,
	),
)
