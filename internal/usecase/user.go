package usecase

import (
	"context"
	"errors"

	"extinguard/internal/domain/user"
	"extinguard/internal/infra"
	"extinguard/internal/pkg/errs"
	"extinguard/internal/pkg/password"
	"extinguard/internal/usecase/readmodel"
)

var (
	ErrEmailTaken             = errors.New("email already registered")
	ErrSelfDeletion           = errors.New("cannot delete own account")
	ErrDomainValidationFailed = errors.New("domain validation failed")
)

type RegisterParams struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Address  string
}

type UserUseCase interface {
	Register(ctx context.Context, params RegisterParams) (*readmodel.UserRM, error)
	ListUsers(ctx context.Context) ([]*readmodel.UserRM, error)
	DeleteUser(ctx context.Context, id, requesterID int64) error
}

type userUseCaseImpl struct {
	userRepo UserRepository
}

func NewUserUseCase(userRepo UserRepository) UserUseCase {
	return &userUseCaseImpl{userRepo: userRepo}
}

// Register creates a storefront account. The role is always USER;
// administrators are provisioned out of band.
func (u *userUseCaseImpl) Register(ctx context.Context, params RegisterParams) (*readmodel.UserRM, error) {
	email, err := user.NewEmail(params.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}
	if _, err := user.NewPassword(params.Password); err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	hash, err := password.HashPassword(params.Password)
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	entity, err := user.NewUser(params.Name, email, hash, params.Phone, params.Address, user.RoleUser)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	userRM, err := u.userRepo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, errs.Wrap(err, "failed to create user")
	}
	return userRM, nil
}

func (u *userUseCaseImpl) ListUsers(ctx context.Context) ([]*readmodel.UserRM, error) {
	users, err := u.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list users")
	}
	return users, nil
}

// DeleteUser removes an account. Deleting the requesting administrator's
// own account is rejected so an instance cannot lock itself out.
func (u *userUseCaseImpl) DeleteUser(ctx context.Context, id, requesterID int64) error {
	if id == requesterID {
		return ErrSelfDeletion
	}

	if err := u.userRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return errs.Wrap(err, "failed to delete user")
	}
	return nil
}
