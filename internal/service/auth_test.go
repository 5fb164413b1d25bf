package service

import (
	"io"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fransit/francheese-website1/internal/store"
)

const testSecret = "test-secret"

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestAuth(t *testing.T) (AuthService, *store.Store) {
	t.Helper()
	st := store.New()
	return NewAuthService(st, testSecret, "admin@test.com", quietLogger()), st
}

func TestRegisterAndLogin(t *testing.T) {
	auth, _ := newTestAuth(t)

	u, err := auth.Register("Ada", "Ada@Example.Com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", u.Email, "email is lowercased")
	assert.False(t, u.IsAdmin)
	assert.True(t, u.Verified)
	assert.Zero(t, u.Points)
	assert.Zero(t, u.TotalSpent)
	assert.Empty(t, u.Purchases)

	token, logged, err := auth.Login("ada@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, u.ID, logged.ID)

	claims, err := auth.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.False(t, claims.IsAdmin)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	auth, _ := newTestAuth(t)

	_, err := auth.Register("Ada", "ada@example.com", "secret123")
	require.NoError(t, err)

	_, err = auth.Register("Imposter", "ADA@EXAMPLE.COM", "other456")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterAdminGrantEmail(t *testing.T) {
	auth, _ := newTestAuth(t)

	u, err := auth.Register("Boss", "admin@test.com", "secret123")
	require.NoError(t, err)
	assert.True(t, u.IsAdmin)

	token, _, err := auth.Login("admin@test.com", "secret123")
	require.NoError(t, err)
	claims, err := auth.ParseToken(token)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin)
}

func TestLoginFailures(t *testing.T) {
	auth, _ := newTestAuth(t)
	_, err := auth.Register("Ada", "ada@example.com", "secret123")
	require.NoError(t, err)

	_, _, err = auth.Login("ada@example.com", "wrongpass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = auth.Login("nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	auth, _ := newTestAuth(t)

	_, err := auth.ParseToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	auth, _ := newTestAuth(t)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: "user-x",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-48 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-24 * time.Hour)),
		},
	})
	signed, err := expired.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = auth.ParseToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	auth, _ := newTestAuth(t)

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: "user-x",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := forged.SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	_, err = auth.ParseToken(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
