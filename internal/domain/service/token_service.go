package service

// TokenService validates bearer tokens issued by the external identity
// provider. The core trusts the identity it extracts and performs no
// authentication of its own.
type TokenService interface {
	// ValidateAccessToken verifies the token signature and expiry and returns
	// the opaque user ID carried in the subject claim.
	ValidateAccessToken(tokenString string) (string, error)
}
