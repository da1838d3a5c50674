package session

import (
	"context"
	"net/http"
	"strings"
)

// contextKey is a private type for context values set by this package.
type contextKey struct{}

var identityKey contextKey

// WithIdentity returns a context carrying the given identity. Exported so
// tests can simulate an authenticated request without minting a token.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// FromContext returns the identity attached to the context, if any.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

// Middleware resolves the session token on each request and, when valid,
// attaches the resulting identity to the request context. Requests without
// a valid token pass through anonymously; denial is the gate's job, not the
// middleware's.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token := m.tokenFromRequest(r); token != "" {
			if id, err := m.Verify(token); err == nil {
				r = r.WithContext(WithIdentity(r.Context(), id))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// tokenFromRequest extracts the session token from the session cookie or,
// failing that, an Authorization bearer header.
func (m *Manager) tokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(m.cookieName); err == nil && c.Value != "" {
		return c.Value
	}
	auth := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(auth, "Bearer "); ok {
		return token
	}
	return ""
}
