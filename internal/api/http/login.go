package http

import (
	"errors"
	"net/http"

	"github.com/tablekeep/tablekeep/internal/api/service"
	"github.com/tablekeep/tablekeep/pkg/httpx"
	"github.com/tablekeep/tablekeep/pkg/slogx"
)

// LoginHandler serves POST /login. Credentials arrive via HTTP Basic auth;
// a successful login responds with the signed access token.
type LoginHandler struct {
	TokenService *service.TokenService
}

func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	username, password, ok := r.BasicAuth()
	if !ok || username == "" || password == "" {
		writeLoginChallenge(w)
		return
	}

	token, err := h.TokenService.Issue(ctx, username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeLoginChallenge(w)
			return
		}
		log.Error("token issuance failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"token": token})
}

// writeLoginChallenge reports a failed or absent login with the Basic auth
// challenge the wire contract expects.
func writeLoginChallenge(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Basic realm="Login required!"`)
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte("Could not verify"))
}
