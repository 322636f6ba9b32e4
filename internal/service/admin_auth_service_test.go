package service

import (
	"testing"

	"carrental/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminLogin(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	t.Setenv("ADMIN_EMAIL", "admin@example.com")
	t.Setenv("ADMIN_PASSWORD_HASH", hash)
	t.Setenv("JWT_SECRET", "test-secret")

	svc := NewAdminAuthService(repository.NewEnvAdminRepository())

	tokenString, err := svc.Login("admin@example.com", "s3cret")
	require.NoError(t, err)

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "admin@example.com", claims["email"])
}

func TestAdminLoginEmailIsCaseInsensitive(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	t.Setenv("ADMIN_EMAIL", "admin@example.com")
	t.Setenv("ADMIN_PASSWORD_HASH", hash)
	t.Setenv("JWT_SECRET", "test-secret")

	svc := NewAdminAuthService(repository.NewEnvAdminRepository())
	_, err = svc.Login("Admin@Example.COM", "s3cret")
	assert.NoError(t, err)
}

func TestAdminLoginRejectsBadCredentials(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	t.Setenv("ADMIN_EMAIL", "admin@example.com")
	t.Setenv("ADMIN_PASSWORD_HASH", hash)
	t.Setenv("JWT_SECRET", "test-secret")

	svc := NewAdminAuthService(repository.NewEnvAdminRepository())

	_, err = svc.Login("admin@example.com", "wrong")
	assert.EqualError(t, err, "invalid credentials")

	_, err = svc.Login("someone@example.com", "s3cret")
	assert.EqualError(t, err, "invalid credentials")
}
