package httpx

import "context"

type ctxKey string

const (
	// CtxKeyPrincipal carries the authenticated username through the request.
	CtxKeyPrincipal ctxKey = "principal"
)

// PrincipalFromContext returns the authenticated username, or "" when the
// request never passed the authentication middleware.
func PrincipalFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyPrincipal).(string); ok {
		return v
	}
	return ""
}
