package components

import (
	"extinguard/internal/handler"
	"extinguard/internal/handler/api"
	"extinguard/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewUserHandler,
		api.NewCatalogHandler,
		api.NewCartHandler,
		api.NewRecargaHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
