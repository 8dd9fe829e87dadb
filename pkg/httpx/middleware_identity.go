package httpx

import (
	"context"
	"net/http"
	"strings"
)

// Identity headers. The service trusts these as already authenticated; a
// production deployment must put a token-validating gateway in front and
// strip client-supplied values.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

// IdentityMiddleware copies the caller-supplied identity headers into the
// request context. It never rejects; use RequireIdentity on routes that need
// a caller.
func IdentityMiddleware() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if id := strings.TrimSpace(r.Header.Get(HeaderUserID)); id != "" {
				ctx = context.WithValue(ctx, CtxKeyUserID, id)
			}
			if role := strings.TrimSpace(r.Header.Get(HeaderUserRole)); role != "" {
				ctx = context.WithValue(ctx, CtxKeyUserRole, strings.ToLower(role))
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireIdentity rejects requests that carry no caller id.
func RequireIdentity() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if UserIDFromCtx(r.Context()) == "" {
				WriteJSON(w, http.StatusUnauthorized, map[string]string{
					"error": "Authentication required",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
