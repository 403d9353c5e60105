package httpx

import "context"

type ctxKey string

const (
	CtxKeyUserID ctxKey = "user_id" // token subject (username)
	CtxKeyRole   ctxKey = "role"    // role resolved from the credential store
	CtxKeyClaims ctxKey = "claims"  // full jwtx.Claims if a handler wants them
)

// UserIDFromContext returns the authenticated subject, if any.
func UserIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(CtxKeyUserID).(string)
	return v, ok
}

// WithRole records the resolved role for downstream role checks.
func WithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, CtxKeyRole, role)
}

func roleFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyRole).(string); ok {
		return v
	}
	return ""
}
