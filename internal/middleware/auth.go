package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Akashtl-Tiwari/bytebite-food-ordering/internal/auth"
)

type contextKey string

const sessionKey contextKey = "session"

// SessionFromContext returns the authenticated session placed by
// RequireSession, if any.
func SessionFromContext(ctx context.Context) (auth.Session, bool) {
	session, ok := ctx.Value(sessionKey).(auth.Session)
	return session, ok
}

// WithSession returns a context carrying the session. Exposed for handler
// tests that bypass RequireSession.
func WithSession(ctx context.Context, session auth.Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// RequireSession validates the bearer token from the Authorization header
// against the session store and attaches the session to the request context.
func RequireSession(store *auth.Store) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				http.Error(w, "Unauthorized: session token required", http.StatusUnauthorized)
				return
			}

			session, ok := store.Resolve(token)
			if !ok {
				http.Error(w, "Unauthorized: invalid or expired session", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
		})
	}
}

// RequireAdmin rejects sessions without the admin role. Must run after
// RequireSession.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := SessionFromContext(r.Context())
		if !ok {
			http.Error(w, "Unauthorized: session token required", http.StatusUnauthorized)
			return
		}
		if !session.IsAdmin {
			http.Error(w, "Forbidden: admin role required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
