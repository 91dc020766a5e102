package usecase

import (
	"context"
	"errors"

	"extinguard/internal/domain/user"
	"extinguard/internal/pkg/jwt"
	"extinguard/internal/pkg/password"
	"extinguard/internal/usecase/readmodel"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrTokenGeneration      = errors.New("token generation failed")
	ErrTokenValidation      = errors.New("token validation failed")
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*readmodel.UserRM, string, error)
	FindByID(ctx context.Context, id int64) (*readmodel.UserRM, error)
	FindAll(ctx context.Context) ([]*readmodel.UserRM, error)
	Create(ctx context.Context, u *user.User) (*readmodel.UserRM, error)
	Delete(ctx context.Context, id int64) error
}

// TokenValidator is the part of AuthUseCase the auth middleware depends on.
type TokenValidator interface {
	ValidateToken(tokenString string) (int64, string, user.Role, error)
}

type AuthUseCase interface {
	Login(ctx context.Context, credentials user.Credentials) (string, *readmodel.UserRM, error)
	GetCurrentUser(ctx context.Context, userID int64) (*readmodel.UserRM, error)
	ValidateToken(tokenString string) (int64, string, user.Role, error)
}

type authUseCaseImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
}

func NewAuthUseCase(userRepo UserRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials user.Credentials) (string, *readmodel.UserRM, error) {
	userRM, hashedPassword, err := a.userRepo.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		return "", nil, ErrUserNotFound
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(userRM.Role)
	if err != nil {
		return "", nil, ErrAuthenticationFailed
	}

	token, err := a.jwtService.GenerateToken(userRM.ID, userRM.Email, role)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	return token, userRM, nil
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID int64) (*readmodel.UserRM, error) {
	userRM, err := a.userRepo.FindByID(ctx, userID)
	if err != nil || userRM == nil {
		return nil, ErrUserNotFound
	}
	return userRM, nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (int64, string, user.Role, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return 0, "", "", ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return 0, "", "", ErrTokenValidation
	}

	return claims.UserID, claims.Email, role, nil
}
