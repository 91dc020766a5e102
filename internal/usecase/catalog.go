package usecase

import (
	"context"
	"errors"

	"extinguard/internal/domain/catalog"
	"extinguard/internal/infra"
	"extinguard/internal/pkg/errs"
	"extinguard/internal/usecase/readmodel"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category already exists")
	ErrCategoryInUse    = errors.New("category still has products")
)

type ProductRepository interface {
	FindAll(ctx context.Context) ([]*readmodel.ProductRM, error)
	FindByID(ctx context.Context, id int64) (*readmodel.ProductRM, error)
	Create(ctx context.Context, p catalog.Product) (*readmodel.ProductRM, error)
	Delete(ctx context.Context, id int64) error
}

type CategoryRepository interface {
	FindAll(ctx context.Context) ([]*readmodel.CategoryRM, error)
	FindByID(ctx context.Context, id int64) (*readmodel.CategoryRM, error)
	Create(ctx context.Context, c catalog.Category) (*readmodel.CategoryRM, error)
	Delete(ctx context.Context, id int64) error
}

type CreateProductParams struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	CategoryID  int64
}

type CatalogUseCase interface {
	ListProducts(ctx context.Context) ([]*readmodel.ProductRM, error)
	CreateProduct(ctx context.Context, params CreateProductParams) (*readmodel.ProductRM, error)
	DeleteProduct(ctx context.Context, id int64) error
	ListCategories(ctx context.Context) ([]*readmodel.CategoryRM, error)
	CreateCategory(ctx context.Context, name string) (*readmodel.CategoryRM, error)
	DeleteCategory(ctx context.Context, id int64) error
}

type catalogUseCaseImpl struct {
	productRepo  ProductRepository
	categoryRepo CategoryRepository
}

func NewCatalogUseCase(productRepo ProductRepository, categoryRepo CategoryRepository) CatalogUseCase {
	return &catalogUseCaseImpl{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

func (c *catalogUseCaseImpl) ListProducts(ctx context.Context) ([]*readmodel.ProductRM, error) {
	products, err := c.productRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list products")
	}
	return products, nil
}

func (c *catalogUseCaseImpl) CreateProduct(ctx context.Context, params CreateProductParams) (*readmodel.ProductRM, error) {
	entity, err := catalog.NewProduct(params.Name, params.Description, params.Price, params.Stock, params.CategoryID)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	productRM, err := c.productRepo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, ErrCategoryNotFound
		}
		return nil, errs.Wrap(err, "failed to create product")
	}
	return productRM, nil
}

func (c *catalogUseCaseImpl) DeleteProduct(ctx context.Context, id int64) error {
	if err := c.productRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrProductNotFound
		}
		return errs.Wrap(err, "failed to delete product")
	}
	return nil
}

func (c *catalogUseCaseImpl) ListCategories(ctx context.Context) ([]*readmodel.CategoryRM, error) {
	categories, err := c.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list categories")
	}
	return categories, nil
}

func (c *catalogUseCaseImpl) CreateCategory(ctx context.Context, name string) (*readmodel.CategoryRM, error) {
	entity, err := catalog.NewCategory(name)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	categoryRM, err := c.categoryRepo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrCategoryExists
		}
		return nil, errs.Wrap(err, "failed to create category")
	}
	return categoryRM, nil
}

func (c *catalogUseCaseImpl) DeleteCategory(ctx context.Context, id int64) error {
	if err := c.categoryRepo.Delete(ctx, id); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return ErrCategoryNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return ErrCategoryInUse
		default:
			return errs.Wrap(err, "failed to delete category")
		}
	}
	return nil
}
