package apperrors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap_PreservesUnderlyingError(t *testing.T) {
	cause := errors.New("connection refused")
	appErr := DatabaseError(cause)

	assert.True(t, Is(appErr, cause))
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode)
	// The client-facing message never leaks the cause.
	assert.Equal(t, "Internal server error", appErr.Message)
	assert.Contains(t, appErr.Error(), "connection refused")
}

func TestAs_ExtractsAppError(t *testing.T) {
	var appErr *AppError
	require.True(t, As(ErrInvalidCredentials, &appErr))
	assert.Equal(t, CodeInvalidCredentials, appErr.Code)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
}

func TestDomainErrors_Messages(t *testing.T) {
	assert.Equal(t, "Invalid credentials.", ErrInvalidCredentials.Message)
	assert.Equal(t, "User already exists.", ErrUserAlreadyExists.Message)
	assert.Equal(t, "Password must be at least 6 characters.", ErrWeakPassword.Message)
}

func TestMissingField(t *testing.T) {
	err := MissingField("idea", "title")
	assert.Equal(t, "title is required", err.Message)
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode)
	assert.Equal(t, CodeValidationFailed, err.Code)
}

func TestNewBadRequestError(t *testing.T) {
	err := NewBadRequestError("malformed body")
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode)
	assert.Equal(t, "malformed body", err.Message)
}
