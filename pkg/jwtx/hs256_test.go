package jwtx_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"github.com/tablekeep/tablekeep/pkg/jwtx"
)

func TestHS256SignVerifyRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	signer, err := jwtx.NewSignerHS256(secret)
	require.NoError(t, err)
	verifier := jwtx.NewVerifierHS256(secret)

	claims := jwtx.NewAccessClaims("admin", 30*time.Minute, time.Now().UTC())
	raw, err := signer.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	got, err := verifier.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, "admin", got.Username)
	require.WithinDuration(t, claims.ExpiresAt.Time, got.ExpiresAt.Time, time.Second)
}

func TestHS256RejectsEmptySecret(t *testing.T) {
	_, err := jwtx.NewSignerHS256(nil)
	require.Error(t, err)
}

func TestHS256VerifyFailures(t *testing.T) {
	signer, err := jwtx.NewSignerHS256([]byte("right-secret"))
	require.NoError(t, err)
	verifier := jwtx.NewVerifierHS256([]byte("right-secret"))

	t.Run("wrong secret", func(t *testing.T) {
		otherSigner, err := jwtx.NewSignerHS256([]byte("wrong-secret"))
		require.NoError(t, err)

		raw, err := otherSigner.Sign(jwtx.NewAccessClaims("admin", time.Minute, time.Now().UTC()))
		require.NoError(t, err)

		_, err = verifier.Verify(raw)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("malformed token", func(t *testing.T) {
		_, err := verifier.Verify("not-a-jwt")
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})

	t.Run("expired token", func(t *testing.T) {
		claims := jwtx.NewAccessClaims("admin", time.Minute, time.Now().UTC().Add(-time.Hour))
		raw, err := signer.Sign(claims)
		require.NoError(t, err)

		_, err = verifier.Verify(raw)
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("unsigned token rejected", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		})
		raw, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = verifier.Verify(raw)
		require.ErrorIs(t, err, jwtx.ErrAlgMismatch)
	})
}

func TestValidateExpiry(t *testing.T) {
	now := time.Now().UTC()

	t.Run("valid token", func(t *testing.T) {
		claims := jwtx.NewAccessClaims("admin", time.Minute, now)
		require.NoError(t, claims.ValidateExpiry())
	})

	t.Run("expired token", func(t *testing.T) {
		claims := jwtx.NewAccessClaims("admin", time.Minute, now.Add(-time.Hour))
		require.ErrorIs(t, claims.ValidateExpiry(), jwtx.ErrExpired)
	})

	t.Run("missing exp claim", func(t *testing.T) {
		claims := jwtx.Claims{Username: "admin"}
		require.ErrorIs(t, claims.ValidateExpiry(), jwtx.ErrInvalidClaim)
	})
}
