package dto

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is the body for both register and login. No token: the
// client keeps the email and scopes later requests with it.
type AuthResponse struct {
	Success bool   `json:"success"`
	ID      uint   `json:"id,omitempty"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
