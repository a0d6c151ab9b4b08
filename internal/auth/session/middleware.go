package session

import (
	"context"
	"net/http"
)

type contextKey string

const UserCtxKey contextKey = "admin_user"

// Require gates a route group behind an authenticated session. Missing
// or invalid cookies short-circuit to a redirect; the wrapped handler
// is never invoked.
func Require(m *Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, err := m.Authenticate(r)
			if err != nil {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), UserCtxKey, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Username returns the authenticated admin recorded by Require.
func Username(ctx context.Context) string {
	username, _ := ctx.Value(UserCtxKey).(string)
	return username
}
