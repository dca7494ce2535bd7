package components

import (
	"coolslate/internal/infra/readstore"
	"coolslate/internal/infra/repository"
	"coolslate/internal/infra/uow"
	"coolslate/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		uow.NewPostgresUoW,
		fx.Annotate(
			repository.NewCatalogReadStore,
			fx.As(new(shared.CatalogReads)),
		),
		readstore.NewCalendarReadStore,
		readstore.NewOrderReadStore,
	),
)
