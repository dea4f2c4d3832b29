package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/tablekeep/tablekeep/pkg/cryptox"
	"github.com/tablekeep/tablekeep/pkg/jwtx"
	"github.com/tablekeep/tablekeep/pkg/slogx"
)

var ErrInvalidCredentials = errors.New("invalid_credentials")

// TokenService issues access tokens for the single configured credential
// pair. It is stateless: nothing is recorded server-side, tokens simply
// expire by clock comparison at validation time.
type TokenService struct {
	Signer jwtx.Signer

	// Username and PasswordHash are the only accepted credential pair.
	// The hash is Argon2id, computed from config at startup.
	Username     string
	PasswordHash string

	AccessTTL time.Duration
}

// Issue validates the credential pair and mints a signed token with the
// username as subject. Both checks always run so a bad username costs the
// same time as a bad password.
func (s *TokenService) Issue(ctx context.Context, username, password string) (string, error) {
	l := slogx.FromContext(ctx)

	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.Username)) == 1
	passwordErr := cryptox.VerifyPassword(password, s.PasswordHash)

	if !usernameOK || passwordErr != nil {
		l.Info("login rejected", "username", username)
		return "", ErrInvalidCredentials
	}

	claims := jwtx.NewAccessClaims(username, s.AccessTTL, time.Now().UTC())
	return s.Signer.Sign(claims)
}
