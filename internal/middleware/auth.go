package middleware

import (
	"net/http"
	"strings"

	"github.com/hongminglow/field-checkin/internal/auth"
	"github.com/hongminglow/field-checkin/internal/http/respond"
)

// TokenParser verifies a bearer token and returns the caller.
type TokenParser interface {
	Parse(raw string) (auth.Identity, error)
}

// RequireAuth rejects requests without a valid bearer token and stores the
// verified identity in the request context.
func RequireAuth(tokens TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				respond.Error(w, http.StatusUnauthorized, "access token required")
				return
			}
			identity, err := tokens.Parse(strings.TrimSpace(strings.TrimPrefix(header, "Bearer ")))
			if err != nil {
				respond.Error(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), identity)))
		})
	}
}

// RequireManager lets only managers through. It must run after RequireAuth.
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := auth.FromContext(r.Context())
		if !ok {
			respond.Error(w, http.StatusUnauthorized, "access token required")
			return
		}
		if !identity.IsManager() {
			respond.Error(w, http.StatusForbidden, "access denied, manager role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
