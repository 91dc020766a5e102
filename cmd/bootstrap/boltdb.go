package bootstrap

import (
	"context"

	"extinguard/internal/infra/recargastore"
	"extinguard/internal/pkg/clock"
	"extinguard/internal/pkg/config"

	"go.uber.org/fx"
)

var RecargaStoreModule = fx.Module("recargastore",
	fx.Provide(
		NewRecargaStore,
	),
)

func NewRecargaStore(lc fx.Lifecycle, cfg config.Config, clk clock.Clock) (*recargastore.Store, error) {
	store, err := recargastore.New(cfg.Recargas.Path, clk, cfg.Recargas.DefaultActor)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}
