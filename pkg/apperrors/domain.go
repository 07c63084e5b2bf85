package apperrors

import "net/http"

// Predefined errors for the auth and resource domains. Credential
// failures share one message so callers cannot probe which factor
// was wrong.
var (
	ErrInvalidCredentials = New(CodeInvalidCredentials, "auth", "Invalid credentials.", http.StatusBadRequest)
	ErrUserAlreadyExists  = New(CodeAlreadyExists, "auth", "User already exists.", http.StatusBadRequest)
	ErrWeakPassword       = New(CodeValidationFailed, "auth", "Password must be at least 6 characters.", http.StatusBadRequest)
	ErrMissingCredentials = New(CodeValidationFailed, "auth", "Email and password are required.", http.StatusBadRequest)
)

// MissingField builds a 400 for an absent required field.
func MissingField(domain, field string) *AppError {
	return New(CodeValidationFailed, domain, field+" is required", http.StatusBadRequest)
}
