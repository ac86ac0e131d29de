// Package auth validates bearer tokens issued by the external identity provider.
package auth

import (
	"huddle/config"
	"huddle/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

type jwtService struct {
	accessSecret string
}

// NewTokenService creates the JWT validation service. Token issuance belongs
// to the identity provider; this side only verifies signature and expiry.
func NewTokenService(cfg *config.Config) service.TokenService {
	return &jwtService{
		accessSecret: cfg.SecretKey.Access,
	}
}

// ValidateAccessToken verifies the token and returns the opaque subject.
func (s *jwtService) ValidateAccessToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(s.accessSecret), nil
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to parse access token")
	}
	if !token.Valid {
		return "", errors.New("invalid access token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("failed to parse token claims")
	}

	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		return "", errors.New("subject missing from token")
	}

	return subject, nil
}
