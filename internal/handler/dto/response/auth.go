package response

import "extinguard/internal/usecase/readmodel"

// LoginResponse keeps the success/message envelope the web client expects.
type LoginResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Token   string            `json:"token,omitempty"`
	User    *readmodel.UserRM `json:"user,omitempty"`
}

func LoginOK(token string, u *readmodel.UserRM) LoginResponse {
	return LoginResponse{Success: true, Token: token, User: u}
}

func LoginFailed(message string) LoginResponse {
	return LoginResponse{Success: false, Message: message}
}
