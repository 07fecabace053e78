package middleware

import (
	"context"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/careerbuilder24/e-commerce-project/structs/tables"
)

// Context keys for storing user data in request context
type contextKey string

const UserContextKey contextKey = "user"

// WithSession resolves the session cookie to a user and stores it in the
// request context. Anonymous requests pass through with no user; per-handler
// logic decides whether that is acceptable for the endpoint.
func (mw *Middleware) WithSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := mw.authService.CurrentUser(r)
		if err != nil {
			mw.logger.Warn("Failed to resolve session", gecho.Field("error", err))
			next.ServeHTTP(w, r)
			return
		}

		if user != nil {
			ctx := context.WithValue(r.Context(), UserContextKey, user)
			r = r.WithContext(ctx)
		}

		next.ServeHTTP(w, r)
	})
}

// RequireUser rejects requests without a valid session. Must be used after
// WithSession.
func (mw *Middleware) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserFromContext(r.Context()); !ok {
			gecho.Unauthorized(w, gecho.WithMessage("Not authenticated"), gecho.Send())
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserFromContext extracts the session user from the request context.
func UserFromContext(ctx context.Context) (*tables.User, bool) {
	user, ok := ctx.Value(UserContextKey).(*tables.User)
	return user, ok
}
