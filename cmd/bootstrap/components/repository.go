package components

import (
	"extinguard/internal/infra/cartstore"
	"extinguard/internal/infra/recargastore"
	repo_impl "extinguard/internal/infra/repository"
	"extinguard/internal/pkg/config"
	"extinguard/internal/usecase"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewProductRepository,
			fx.As(new(usecase.ProductRepository)),
		),
		fx.Annotate(
			repo_impl.NewCategoryRepository,
			fx.As(new(usecase.CategoryRepository)),
		),
		fx.Annotate(
			NewCartStore,
			fx.As(new(usecase.CartStore)),
		),
		fx.Annotate(
			func(s *recargastore.Store) *recargastore.Store { return s },
			fx.As(new(usecase.RecargaStore)),
		),
	),
)

func NewCartStore(client *redis.Client, cfg config.Config) *cartstore.Store {
	return cartstore.New(client, cfg.Redis.CartTTL)
}
