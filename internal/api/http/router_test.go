package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tablekeep/tablekeep/internal/api/service"
	"github.com/tablekeep/tablekeep/internal/api/store/drivers/sqlite"
	"github.com/tablekeep/tablekeep/pkg/cryptox"
	"github.com/tablekeep/tablekeep/pkg/httpx"
	"github.com/tablekeep/tablekeep/pkg/jwtx"
)

const (
	testSecret   = "admin123"
	testUsername = "admin"
	testPassword = "admin123"
)

// newTestRouter wires a full router against an in-memory database, the same
// shape the application assembles at startup.
func newTestRouter(t *testing.T) *Router {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	signer, err := jwtx.NewSignerHS256([]byte(testSecret))
	require.NoError(t, err)

	hash, err := cryptox.HashPassword(testPassword)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := NewRouter(jwtx.NewVerifierHS256([]byte(testSecret)), "test", st, logger)

	r.TokenService = &service.TokenService{
		Signer:       signer,
		Username:     testUsername,
		PasswordHash: hash,
		AccessTTL:    time.Minute,
	}
	r.CustomerService = &service.CustomerService{Store: st}
	r.OrderService = &service.OrderService{Store: st}
	r.MenuService = &service.MenuService{Store: st}
	r.PaymentService = &service.PaymentService{Store: st}
	r.EmployeeService = &service.EmployeeService{Store: st}

	r.ApplyRoutes()
	return r
}

// doJSON performs a request against the router. A non-empty token is sent in
// the access token header; a non-nil body is JSON encoded.
func doJSON(t *testing.T, r *Router, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, target, reader)
	if token != "" {
		req.Header.Set(httpx.TokenHeader, token)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func loginToken(t *testing.T, r *Router) string {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.SetBasicAuth(testUsername, testPassword)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeJSON(t, rec)
	token, ok := body["token"].(string)
	require.True(t, ok, "login response should carry a token")
	require.NotEmpty(t, token)
	return token
}

func TestLogin(t *testing.T) {
	r := newTestRouter(t)

	t.Run("valid credentials issue a token", func(t *testing.T) {
		token := loginToken(t, r)

		claims, err := jwtx.NewVerifierHS256([]byte(testSecret)).Verify(token)
		require.NoError(t, err)
		require.Equal(t, testUsername, claims.Username)
	})

	t.Run("wrong password is challenged", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.SetBasicAuth(testUsername, "nope")

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, `Basic realm="Login required!"`, rec.Header().Get("WWW-Authenticate"))
		require.Equal(t, "Could not verify", rec.Body.String())
	})

	t.Run("wrong username is challenged", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.SetBasicAuth("root", testPassword)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "Could not verify", rec.Body.String())
	})

	t.Run("missing basic auth is challenged", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/login", "", nil)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, `Basic realm="Login required!"`, rec.Header().Get("WWW-Authenticate"))
	})
}

func TestAuthGate(t *testing.T) {
	r := newTestRouter(t)

	t.Run("missing token", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/customers", "", nil)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "Token is missing!", decodeJSON(t, rec)["message"])
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/customers", "not-a-jwt", nil)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "Token is invalid!", decodeJSON(t, rec)["message"])
	})

	t.Run("expired token", func(t *testing.T) {
		signer, err := jwtx.NewSignerHS256([]byte(testSecret))
		require.NoError(t, err)

		claims := jwtx.NewAccessClaims(testUsername, -time.Minute, time.Now().UTC())
		token, err := signer.Sign(claims)
		require.NoError(t, err)

		rec := doJSON(t, r, http.MethodGet, "/customers", token, nil)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "Token is invalid!", decodeJSON(t, rec)["message"])
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		signer, err := jwtx.NewSignerHS256([]byte("other-secret"))
		require.NoError(t, err)

		claims := jwtx.NewAccessClaims(testUsername, time.Minute, time.Now().UTC())
		token, err := signer.Sign(claims)
		require.NoError(t, err)

		rec := doJSON(t, r, http.MethodGet, "/customers", token, nil)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "Token is invalid!", decodeJSON(t, rec)["message"])
	})

	t.Run("valid token passes the gate", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/customers", loginToken(t, r), nil)
		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestSystemEndpoints(t *testing.T) {
	r := newTestRouter(t)

	t.Run("root is open and serves the landing page", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/", "", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "<p>Hello, World!</p>", rec.Body.String())
	})

	t.Run("livez", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/livez", "", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "ok", decodeJSON(t, rec)["status"])
	})

	t.Run("readyz reports database health", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/readyz", "", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeJSON(t, rec)
		require.Equal(t, "ok", body["status"])
		require.Equal(t, "ok", body["database"])
	})

	t.Run("metrics is exposed", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, "/metrics", "", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "http_requests_total")
	})
}
