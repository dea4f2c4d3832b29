package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL is the default lifetime for access tokens.
// Tokens are never refreshed or revoked server-side, so keep this short.
const DefaultAccessTokenTTL = 30 * time.Minute

// Claims are the access-token claims. The claim names are part of the wire
// contract: clients of this API read "user" and "exp" and nothing else, so
// changes here must stay additive.
type Claims struct {
	jwt.RegisteredClaims

	// Username of the authenticated principal.
	Username string `json:"user"`
}

// NewAccessClaims builds minimally-correct claims for a freshly issued token.
func NewAccessClaims(username string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Username: username,
	}
}

// ValidateExpiry ensures the token hasn't expired (exp).
func (c *Claims) ValidateExpiry() error {
	if c.ExpiresAt == nil {
		return ErrInvalidClaim
	}
	if time.Now().UTC().After(c.ExpiresAt.Time) {
		return ErrExpired
	}
	return nil
}
