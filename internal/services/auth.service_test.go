package services

import (
	"testing"

	"lunara/config"
	. "lunara/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthService(t *testing.T) *AuthService {
	t.Helper()

	service, err := NewAuthService(config.Config{
		JWTSecret:      "test-secret-for-auth-service",
		JWTExpiryHours: 1,
	})
	require.NoError(t, err)

	return service
}

func TestNewAuthServiceRequiresSecret(t *testing.T) {
	_, err := NewAuthService(config.Config{JWTExpiryHours: 1})
	assert.Error(t, err)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	service := testAuthService(t)

	hash, err := service.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, service.CheckPassword(hash, "correct horse battery staple"))
	assert.False(t, service.CheckPassword(hash, "wrong password"))
}

func TestTokenRoundTrip(t *testing.T) {
	service := testAuthService(t)

	user := &User{}
	user.ID = uuid.New()

	token, err := service.IssueToken(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	service := testAuthService(t)

	testCases := []string{
		"",
		"not-a-token",
		"aaaa.bbbb.cccc",
	}

	for _, token := range testCases {
		_, err := service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	issuer := testAuthService(t)

	other, err := NewAuthService(config.Config{
		JWTSecret:      "a-different-secret-entirely",
		JWTExpiryHours: 1,
	})
	require.NoError(t, err)

	user := &User{}
	user.ID = uuid.New()

	token, err := issuer.IssueToken(user)
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
