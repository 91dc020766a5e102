package request

import "extinguard/internal/usecase"

// RegisterRequest mirrors the storefront signup form. A role field sent by
// the client is ignored; every self-registered account is a USER.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone" binding:"required"`
	Address  string `json:"address" binding:"required"`
	Role     string `json:"role"`
}

func (r *RegisterRequest) ToParams() usecase.RegisterParams {
	return usecase.RegisterParams{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Phone:    r.Phone,
		Address:  r.Address,
	}
}
