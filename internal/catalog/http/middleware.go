package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/scentworks/parfum/internal/catalog/domain"
	"github.com/scentworks/parfum/internal/catalog/store"
	"github.com/scentworks/parfum/pkg/httpx"
	"github.com/scentworks/parfum/pkg/slogx"
)

type userCtxKey struct{}

// UserFromContext returns the resolved identity placed by IdentityMiddleware.
func UserFromContext(ctx context.Context) (domain.User, bool) {
	u, ok := ctx.Value(userCtxKey{}).(domain.User)
	return u, ok
}

// IdentityMiddleware resolves the verified token subject to a stored identity.
// Runs after httpx.AuthnMiddleware; a subject with no backing identity (e.g.
// deleted since the token was issued) is unauthenticated, not a 404.
func IdentityMiddleware(users store.Users) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			subject, ok := httpx.UserIDFromContext(ctx)
			if !ok || subject == "" {
				httpx.WriteBearerError(w, "missing token subject")
				return
			}

			u, err := users.GetByUsername(ctx, subject)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					httpx.WriteBearerError(w, "unknown token subject")
					return
				}
				slogx.FromContext(ctx).Error("identity lookup failed", "err", err)
				ErrServerError.WriteError(w)
				return
			}

			ctx = context.WithValue(ctx, userCtxKey{}, u)
			ctx = httpx.WithRole(ctx, u.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
