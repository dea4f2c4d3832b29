package httpx

import (
	"context"
	"net/http"

	"github.com/tablekeep/tablekeep/pkg/jwtx"
	"github.com/tablekeep/tablekeep/pkg/slogx"
)

// TokenHeader is the request header clients present their access token in.
const TokenHeader = "x-access-token"

// Response bodies are part of the wire contract; existing clients match on
// these exact strings.
const (
	msgTokenMissing = "Token is missing!"
	msgTokenInvalid = "Token is invalid!"
)

// AuthnMiddleware gates a handler behind token authentication. Every
// verification failure (bad signature, malformed token, expired) collapses
// into the same invalid-token response; only the missing-header case is
// reported separately.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw := r.Header.Get(TokenHeader)
			if raw == "" {
				WriteMessage(w, http.StatusUnauthorized, msgTokenMissing)
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("jwt verify failed", "err", err)
				WriteMessage(w, http.StatusUnauthorized, msgTokenInvalid)
				return
			}

			ctx = context.WithValue(ctx, CtxKeyPrincipal, claims.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
