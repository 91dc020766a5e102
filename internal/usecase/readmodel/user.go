package readmodel

// UserRM is the user projection the API exposes; password hashes never
// leave the repository layer.
type UserRM struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Role    string `json:"role"`
}
