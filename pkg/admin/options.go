// Option functions for configuring API.

package admin

import (
	"log/slog"

	"github.com/tradinggrow/backoffice/internal/store"
	"github.com/tradinggrow/backoffice/pkg/session"
)

// Option configures an API.
type Option func(*API)

// WithSessionManager sets the session manager used to resolve admin
// sessions. Required for any deployment that shares a secret with the
// session issuer.
func WithSessionManager(m *session.Manager) Option {
	return func(a *API) {
		if m != nil {
			a.sessions = m
		}
	}
}

// WithStores injects the three collection stores. Nil stores keep the
// seeded defaults. Tests use this to construct isolated fixtures.
func WithStores(users *store.UserStore, stocks *store.StockStore, requests *store.RequestStore) Option {
	return func(a *API) {
		if users != nil {
			a.users = users
		}
		if stocks != nil {
			a.stocks = stocks
		}
		if requests != nil {
			a.requests = requests
		}
	}
}

// WithLogger sets the operational logger.
func WithLogger(log *slog.Logger) Option {
	return func(a *API) {
		if log != nil {
			a.log = log
		}
	}
}

// WithRateLimit configures the per-IP rate limiter. If not set, defaults
// of 100 req/s with burst 200 apply.
func WithRateLimit(rps float64, burst int) Option {
	return func(a *API) {
		a.rateLimiter = NewRateLimiter(rps, burst)
	}
}

// WithVersion sets the version string returned by the health endpoint.
// If not set, defaults to "dev".
func WithVersion(version string) Option {
	return func(a *API) {
		a.version = version
	}
}
