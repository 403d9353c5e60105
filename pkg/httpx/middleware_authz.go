package httpx

import "net/http"

// RequireRole gates a handler on an exact role match. The role must already be
// in the request context (set by the identity middleware after the credential
// store lookup). There is no role hierarchy: "admin" does not imply "user" and
// vice versa.
func RequireRole(required string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if roleFromCtx(r.Context()) != required {
				writeBearerRoleError(w, required)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RFC 6750-style error response for insufficient privileges.
func writeBearerRoleError(w http.ResponseWriter, required string) {
	w.Header().
		Set("WWW-Authenticate", `Bearer error="insufficient_scope", scope="`+required+`"`)
	w.WriteHeader(http.StatusForbidden)
	_, _ = w.Write([]byte("insufficient_role"))
}
