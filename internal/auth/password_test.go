package auth

import (
	"testing"

	"scholar_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, CheckPasswordHash("secret123", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
	assert.False(t, CheckPasswordHash("secret123", "not-a-hash"))
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("secret123")
	require.NoError(t, err)
	second, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("123456"))
	assert.NoError(t, ValidatePassword("a much longer passphrase"))

	err := ValidatePassword("12345")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrWeakPassword))

	assert.Error(t, ValidatePassword(""))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "user@test.com", NormalizeEmail("  User@Test.COM "))
	assert.Equal(t, "user@test.com", NormalizeEmail("user@test.com"))
	assert.Equal(t, "", NormalizeEmail("   "))
}
