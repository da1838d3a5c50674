package admin

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/tradinggrow/backoffice/internal/store"
	"github.com/tradinggrow/backoffice/pkg/logging"
	"github.com/tradinggrow/backoffice/pkg/metrics"
	"github.com/tradinggrow/backoffice/pkg/screener"
	"github.com/tradinggrow/backoffice/pkg/session"
)

// API exposes the back office REST API over three in-memory collections.
type API struct {
	users    *store.UserStore
	stocks   *store.StockStore
	requests *store.RequestStore

	sessions        *session.Manager
	metricsRegistry *metrics.Registry
	rateLimiter     *RateLimiter

	httpServer *http.Server
	mux        *http.ServeMux
	addr       string
	startTime  time.Time
	version    string
	log        *slog.Logger
}

// New creates an API listening on addr. Without options it serves the seed
// fixtures with a freshly generated session secret, which is only useful
// for local experiments; real deployments pass WithSessionManager.
func New(addr string, opts ...Option) *API {
	a := &API{
		addr:            addr,
		log:             logging.Nop(),
		metricsRegistry: metrics.New(),
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.users == nil {
		a.users = store.NewUserStore(screener.SeedUsers()...)
	}
	if a.stocks == nil {
		a.stocks = store.NewStockStore(screener.SeedStocks()...)
	}
	if a.requests == nil {
		a.requests = store.NewRequestStore(screener.SeedSubscriptionRequests()...)
	}
	if a.sessions == nil {
		// Cannot fail: GenerateSecret never returns an empty secret.
		a.sessions, _ = session.NewManager(session.Config{Secret: session.GenerateSecret()})
	}
	if a.rateLimiter == nil {
		a.rateLimiter = NewRateLimiter(DefaultRateLimit, DefaultBurstSize)
	}

	mux := http.NewServeMux()
	a.registerRoutes(mux)
	a.mux = mux

	a.httpServer = &http.Server{
		Addr:         addr,
		Handler:      a.withMiddleware(mux),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return a
}

// Handler returns the fully wired handler, including middleware. Exposed
// for tests and for embedding into a larger server.
func (a *API) Handler() http.Handler {
	return a.httpServer.Handler
}

// Sessions returns the session manager the API verifies tokens with.
func (a *API) Sessions() *session.Manager {
	return a.sessions
}

// MetricsRegistry returns the API's metrics registry.
func (a *API) MetricsRegistry() *metrics.Registry {
	return a.metricsRegistry
}

// SetLogger sets the operational logger.
func (a *API) SetLogger(log *slog.Logger) {
	if log != nil {
		a.log = log
	} else {
		a.log = logging.Nop()
	}
}

// Uptime returns the API uptime in seconds.
func (a *API) Uptime() int {
	return int(time.Since(a.startTime).Seconds())
}

// Start begins serving in a background goroutine.
func (a *API) Start() error {
	a.startTime = time.Now()
	a.log.Info("starting back office API", "addr", a.addr)
	go func() {
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("back office API error", "error", err)
		}
	}()
	return nil
}

// Stop gracefully shuts down the server.
func (a *API) Stop() error {
	if a.rateLimiter != nil {
		a.rateLimiter.Stop()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return a.httpServer.Shutdown(ctx)
}

// withMiddleware wraps the mux with the full middleware chain. Order
// (outermost to innermost): request logging -> metrics -> security headers
// -> session resolution -> rate limiting -> handler.
func (a *API) withMiddleware(handler http.Handler) http.Handler {
	h := a.rateLimiter.Middleware(handler)
	h = a.sessions.Middleware(h)
	h = securityHeadersMiddleware(h)
	h = a.metricsMiddleware(h)
	return a.requestLogMiddleware(h)
}
