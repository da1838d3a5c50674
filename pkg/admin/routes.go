// Route registration for the back office API.

package admin

import (
	"net/http"
)

// registerRoutes sets up all API routes.
func (a *API) registerRoutes(mux *http.ServeMux) {
	// Operational surface, not session-gated.
	mux.HandleFunc("GET /health", a.handleHealth)
	mux.Handle("GET /metrics", a.metricsRegistry.Handler())

	// Dashboard
	mux.HandleFunc("GET /admin/api/dashboard-data", a.handleDashboardData)

	// User directory
	mux.HandleFunc("GET /admin/api/users", a.handleListUsers)
	mux.HandleFunc("PUT /admin/api/users/{id}", a.handleUpdateUser)
	mux.HandleFunc("DELETE /admin/api/users/{id}", a.handleDeleteUser)
	mux.HandleFunc("PUT /admin/api/users/{id}/subscription", a.handleUpdateUserSubscription)
	mux.HandleFunc("POST /admin/api/bulk-upgrade", a.handleBulkUpgrade)

	// Subscription request workflow
	mux.HandleFunc("GET /admin/api/subscription-requests", a.handleListSubscriptionRequests)
	mux.HandleFunc("POST /admin/api/subscription-requests/{id}/{action}", a.handleResolveSubscriptionRequest)

	// Stock catalog. The listing is deliberately open: the public screener
	// frontend reads it without a session.
	mux.HandleFunc("GET /admin/api/stocks", a.handleListStocks)
	mux.HandleFunc("POST /admin/api/stocks", a.handleCreateStock)
	mux.HandleFunc("DELETE /admin/api/stocks/{id}", a.handleDeleteStock)
	mux.HandleFunc("PUT /admin/api/stocks/{id}/price", a.handleUpdateStockPrice)
}
