package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Adheeb11/PropVista/models"
	"github.com/Adheeb11/PropVista/utils"
)

type contextKey string

const userKey = contextKey("user")

// WithSession reads the session cookie on every request and, when valid,
// attaches the user to the request context. Pages that work logged-out see
// a nil user.
func WithSession(sessions *utils.Sessions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if user := sessions.Current(r); user != nil {
				r = r.WithContext(context.WithValue(r.Context(), userKey, user))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireSession gates a handler behind a valid session. Visitors without
// one are sent to the login prompt rather than shown an error.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if UserFrom(r.Context()) == nil {
			slog.Info("redirecting unauthenticated visitor", "path", r.URL.Path)
			http.Redirect(w, r, "/login?next="+r.URL.Path, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserFrom returns the session user attached to ctx, or nil.
func UserFrom(ctx context.Context) *models.User {
	user, _ := ctx.Value(userKey).(*models.User)
	return user
}
