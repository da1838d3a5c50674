// Package admin provides the REST API of the TradingGrow back office.
//
// The API manages three in-memory collections — users, stocks, and pending
// subscription upgrade requests — behind a session authorization gate.
// Every endpoint except the public stock listing requires a session whose
// identity carries the admin flag.
//
// Endpoints (mounted under /admin/api):
//
//	GET    /admin/api/dashboard-data                       - Dashboard statistics
//	GET    /admin/api/users                                - List users
//	PUT    /admin/api/users/{id}                           - Partial user update
//	DELETE /admin/api/users/{id}                           - Delete user (idempotent)
//	PUT    /admin/api/users/{id}/subscription              - Set subscription tier
//	GET    /admin/api/subscription-requests                - List pending requests
//	POST   /admin/api/subscription-requests/{id}/{action}  - Approve or reject
//	POST   /admin/api/bulk-upgrade                         - Bulk tier migration
//	GET    /admin/api/stocks                               - List stocks (public)
//	POST   /admin/api/stocks                               - Add stock
//	DELETE /admin/api/stocks/{id}                          - Delete stock (idempotent)
//	PUT    /admin/api/stocks/{id}/price                    - Update price
//
// Operational endpoints: GET /health, GET /metrics.
//
// Usage:
//
//	sessions, _ := session.NewManager(session.Config{Secret: secret})
//	api := admin.New(":4380", admin.WithSessionManager(sessions))
//	api.Start()
//	defer api.Stop()
package admin
