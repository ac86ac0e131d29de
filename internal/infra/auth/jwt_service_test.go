package auth

import (
	"testing"
	"time"

	"huddle/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestTokenService() *jwtService {
	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret

	return NewTokenService(cfg).(*jwtService)
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func TestValidateAccessToken_Success(t *testing.T) {
	svc := newTestTokenService()

	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	subject, err := svc.ValidateAccessToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "user-1", subject)
}

func TestValidateAccessToken_OpaqueSubjectPassesThrough(t *testing.T) {
	svc := newTestTokenService()

	// The subject is opaque; no format beyond non-emptiness is enforced.
	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"sub": "auth0|abc:123/weird",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	subject, err := svc.ValidateAccessToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "auth0|abc:123/weird", subject)
}

func TestValidateAccessToken_WrongSecret(t *testing.T) {
	svc := newTestTokenService()

	tokenString := signToken(t, "other-secret", jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := svc.ValidateAccessToken(tokenString)
	assert.Error(t, err)
}

func TestValidateAccessToken_Expired(t *testing.T) {
	svc := newTestTokenService()

	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, err := svc.ValidateAccessToken(tokenString)
	assert.Error(t, err)
}

func TestValidateAccessToken_MissingSubject(t *testing.T) {
	svc := newTestTokenService()

	tokenString := signToken(t, testSecret, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := svc.ValidateAccessToken(tokenString)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "subject missing")
}

func TestValidateAccessToken_Garbage(t *testing.T) {
	svc := newTestTokenService()

	_, err := svc.ValidateAccessToken("not-a-token")
	assert.Error(t, err)
}
