package usecase

import (
	"context"
	"errors"

	"extinguard/internal/domain/cart"
	"extinguard/internal/infra"
	"extinguard/internal/pkg/errs"
	"extinguard/internal/usecase/readmodel"
)

var (
	ErrCartItemNotFound = errors.New("item not in cart")
	ErrInvalidQuantity  = errors.New("invalid quantity")
)

type CartStore interface {
	Get(ctx context.Context, userID int64) (*cart.Cart, error)
	Save(ctx context.Context, userID int64, c *cart.Cart) error
	Clear(ctx context.Context, userID int64) error
}

type CartUseCase interface {
	GetCart(ctx context.Context, userID int64) (*readmodel.CartRM, error)
	AddItem(ctx context.Context, userID, productID int64) (*readmodel.CartRM, error)
	UpdateItem(ctx context.Context, userID, productID int64, qty int) (*readmodel.CartRM, error)
	RemoveItem(ctx context.Context, userID, productID int64) (*readmodel.CartRM, error)
	ClearCart(ctx context.Context, userID int64) error
}

type cartUseCaseImpl struct {
	cartStore   CartStore
	productRepo ProductRepository
}

func NewCartUseCase(cartStore CartStore, productRepo ProductRepository) CartUseCase {
	return &cartUseCaseImpl{
		cartStore:   cartStore,
		productRepo: productRepo,
	}
}

func (u *cartUseCaseImpl) GetCart(ctx context.Context, userID int64) (*readmodel.CartRM, error) {
	c, err := u.cartStore.Get(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load cart")
	}
	return toCartRM(c), nil
}

// AddItem snapshots the product into the cart, bumping the quantity when it
// is already there.
func (u *cartUseCaseImpl) AddItem(ctx context.Context, userID, productID int64) (*readmodel.CartRM, error) {
	productRM, err := u.productRepo.FindByID(ctx, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, errs.Wrap(err, "failed to find product")
	}

	c, err := u.cartStore.Get(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load cart")
	}

	c.Add(productRM.ID, productRM.Name, productRM.Price)

	if err := u.cartStore.Save(ctx, userID, c); err != nil {
		return nil, errs.Wrap(err, "failed to save cart")
	}
	return toCartRM(c), nil
}

func (u *cartUseCaseImpl) UpdateItem(ctx context.Context, userID, productID int64, qty int) (*readmodel.CartRM, error) {
	c, err := u.cartStore.Get(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load cart")
	}

	if err := c.UpdateQty(productID, qty); err != nil {
		switch {
		case errors.Is(err, cart.ErrInvalidQuantity):
			return nil, ErrInvalidQuantity
		case errors.Is(err, cart.ErrItemNotFound):
			return nil, ErrCartItemNotFound
		default:
			return nil, err
		}
	}

	if err := u.cartStore.Save(ctx, userID, c); err != nil {
		return nil, errs.Wrap(err, "failed to save cart")
	}
	return toCartRM(c), nil
}

func (u *cartUseCaseImpl) RemoveItem(ctx context.Context, userID, productID int64) (*readmodel.CartRM, error) {
	c, err := u.cartStore.Get(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load cart")
	}

	if err := c.Remove(productID); err != nil {
		return nil, ErrCartItemNotFound
	}

	if err := u.cartStore.Save(ctx, userID, c); err != nil {
		return nil, errs.Wrap(err, "failed to save cart")
	}
	return toCartRM(c), nil
}

func (u *cartUseCaseImpl) ClearCart(ctx context.Context, userID int64) error {
	if err := u.cartStore.Clear(ctx, userID); err != nil {
		return errs.Wrap(err, "failed to clear cart")
	}
	return nil
}

func toCartRM(c *cart.Cart) *readmodel.CartRM {
	return &readmodel.CartRM{
		Items: c.Items,
		Total: c.Total(),
		Count: c.Count(),
	}
}
