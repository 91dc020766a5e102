package components

import (
	"extinguard/internal/pkg/clock"
	"extinguard/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewAuthUseCase,
		usecase.NewUserUseCase,
		usecase.NewCatalogUseCase,
		usecase.NewCartUseCase,
		usecase.NewRecargaUseCase,
		NewTokenValidator,
	),
)

func NewTokenValidator(authUseCase usecase.AuthUseCase) usecase.TokenValidator {
	return authUseCase
}
