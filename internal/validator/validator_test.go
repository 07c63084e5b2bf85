package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	UserEmail string `json:"userEmail" binding:"required" validate:"required,email"`
	FullName  string `json:"fullName" validate:"max=10"`
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "userEmail")
	assert.Equal(t, "this field is required", vErr.Errors["userEmail"])
}

func TestValidate_EmailAndMaxRules(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{UserEmail: "not-an-email", FullName: "far far too long"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "must be a valid email address", vErr.Errors["userEmail"])
	assert.Equal(t, "must be at most 10 characters long", vErr.Errors["fullName"])
}

func TestValidate_Passes(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sampleRequest{UserEmail: "user@test.com", FullName: "Short"}))
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Errors: map[string]string{"title": "this field is required"}}
	assert.Contains(t, err.Error(), "Validation failed")
	assert.Contains(t, err.Error(), "title")
}
