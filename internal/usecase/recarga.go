package usecase

import (
	"context"
	"errors"
	"sort"

	"extinguard/internal/domain/recarga"
	"extinguard/internal/infra"
	"extinguard/internal/pkg/errs"
)

var (
	ErrRecargaNotFound   = errors.New("recarga not found")
	ErrInvalidStatus     = errors.New("invalid recarga status")
	ErrInvalidTransition = errors.New("status cannot move backward")
	ErrNotOwner          = errors.New("recarga belongs to another user")
)

type RecargaStore interface {
	Create(ctx context.Context, in recarga.NewRecargaInput) (string, error)
	ListAll(ctx context.Context) ([]*recarga.Recarga, error)
	ListByOwner(ctx context.Context, userEmail string) ([]*recarga.Recarga, error)
	GetByID(ctx context.Context, id string) (*recarga.Recarga, error)
	UpdateStatus(ctx context.Context, id string, newStatus recarga.Status, actor string) (*recarga.Recarga, error)
	Delete(ctx context.Context, id string) error
}

type CreateRecargaParams struct {
	UserEmail      string
	UserID         *int64
	Tipo           string
	EstadoExtintor string
	Fecha          string
	Franja         string
	Direccion      string
	Telefono       string
	Observaciones  string
}

type RecargaUseCase interface {
	CreateRecarga(ctx context.Context, params CreateRecargaParams) (string, error)
	GetRecarga(ctx context.Context, id, requesterEmail string, isAdmin bool) (*recarga.Recarga, error)
	ListOwnRecargas(ctx context.Context, userEmail string) ([]*recarga.Recarga, error)
	ListAllRecargas(ctx context.Context) ([]*recarga.Recarga, error)
	UpdateRecargaStatus(ctx context.Context, id, newStatus, actor string) (*recarga.Recarga, error)
	DeleteRecarga(ctx context.Context, id string) error
}

type recargaUseCaseImpl struct {
	store RecargaStore
}

func NewRecargaUseCase(store RecargaStore) RecargaUseCase {
	return &recargaUseCaseImpl{store: store}
}

func (r *recargaUseCaseImpl) CreateRecarga(ctx context.Context, params CreateRecargaParams) (string, error) {
	id, err := r.store.Create(ctx, recarga.NewRecargaInput{
		UserEmail:      params.UserEmail,
		UserID:         params.UserID,
		Tipo:           params.Tipo,
		EstadoExtintor: params.EstadoExtintor,
		Fecha:          params.Fecha,
		Franja:         params.Franja,
		Direccion:      params.Direccion,
		Telefono:       params.Telefono,
		Observaciones:  params.Observaciones,
	})
	if err != nil {
		if isDomainValidationErr(err) {
			return "", errs.Mark(err, ErrDomainValidationFailed)
		}
		return "", errs.Wrap(err, "failed to create recarga")
	}
	return id, nil
}

// GetRecarga returns the request when the caller owns it or is an admin.
// A foreign id is reported as not-owner rather than leaking its contents.
func (r *recargaUseCaseImpl) GetRecarga(ctx context.Context, id, requesterEmail string, isAdmin bool) (*recarga.Recarga, error) {
	rec, err := r.store.GetByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) || infra.IsKind(err, infra.KindCorruptRecord) {
			return nil, ErrRecargaNotFound
		}
		return nil, errs.Wrap(err, "failed to find recarga")
	}

	if !isAdmin && rec.UserEmail != requesterEmail {
		return nil, ErrNotOwner
	}
	return rec, nil
}

// ListOwnRecargas returns the caller's requests, newest first.
func (r *recargaUseCaseImpl) ListOwnRecargas(ctx context.Context, userEmail string) ([]*recarga.Recarga, error) {
	items, err := r.store.ListByOwner(ctx, userEmail)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list recargas")
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

// ListAllRecargas returns every request in insertion order, for the admin
// back office.
func (r *recargaUseCaseImpl) ListAllRecargas(ctx context.Context) ([]*recarga.Recarga, error) {
	items, err := r.store.ListAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list recargas")
	}
	return items, nil
}

func (r *recargaUseCaseImpl) UpdateRecargaStatus(ctx context.Context, id, newStatus, actor string) (*recarga.Recarga, error) {
	status, err := recarga.NewStatus(newStatus)
	if err != nil {
		return nil, ErrInvalidStatus
	}

	rec, err := r.store.UpdateStatus(ctx, id, status, actor)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrRecargaNotFound
		case errors.Is(err, recarga.ErrBackwardTransition):
			return nil, ErrInvalidTransition
		default:
			return nil, errs.Wrap(err, "failed to update recarga status")
		}
	}
	return rec, nil
}

func (r *recargaUseCaseImpl) DeleteRecarga(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRecargaNotFound
		}
		return errs.Wrap(err, "failed to delete recarga")
	}
	return nil
}

func isDomainValidationErr(err error) bool {
	return errors.Is(err, recarga.ErrMissingUserEmail) ||
		errors.Is(err, recarga.ErrMissingField) ||
		errors.Is(err, recarga.ErrInvalidTipo)
}
