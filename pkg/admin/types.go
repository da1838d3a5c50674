package admin

import "github.com/tradinggrow/backoffice/pkg/screener"

// ErrorResponse is the wire shape of every failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the wire shape of mutations that only confirm.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  int    `json:"uptime"`
}

// DashboardStats holds the user-tier partition shown on the dashboard.
type DashboardStats struct {
	TotalUsers      int `json:"total_users"`
	ProUsers        int `json:"pro_users"`
	MediumUsers     int `json:"medium_users"`
	FreeUsers       int `json:"free_users"`
	TotalScreenings int `json:"total_screenings"`
}

// ScreeningSummary is one row of the dashboard's recent-screenings list.
type ScreeningSummary struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	ResultsCount int    `json:"results_count"`
	CreatedAt    string `json:"created_at"`
}

// DashboardData bundles stats and recent screenings.
type DashboardData struct {
	Stats      DashboardStats     `json:"stats"`
	Screenings []ScreeningSummary `json:"screenings"`
}

// DashboardResponse is returned by GET /dashboard-data.
type DashboardResponse struct {
	Success bool          `json:"success"`
	Data    DashboardData `json:"data"`
}

// UserListResponse is returned by GET /users.
type UserListResponse struct {
	Success bool            `json:"success"`
	Users   []screener.User `json:"users"`
}

// UpdateUserRequest is the body of PUT /users/{id}. Absent fields keep
// their stored values; present fields overwrite them verbatim.
type UpdateUserRequest struct {
	Email            *string `json:"email"`
	FullName         *string `json:"full_name"`
	SubscriptionTier *string `json:"subscription_tier"`
	IsAdmin          *bool   `json:"is_admin"`
}

// UpdateSubscriptionRequest is the body of PUT /users/{id}/subscription.
type UpdateSubscriptionRequest struct {
	SubscriptionTier string `json:"subscription_tier"`
}

// BulkUpgradeRequest is the body of POST /bulk-upgrade.
type BulkUpgradeRequest struct {
	FromTier string `json:"from_tier"`
	ToTier   string `json:"to_tier"`
}

// BulkUpgradeResponse is returned by POST /bulk-upgrade.
type BulkUpgradeResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	UpdatedCount int    `json:"updated_count"`
}

// RequestListResponse is returned by GET /subscription-requests.
type RequestListResponse struct {
	Success  bool                           `json:"success"`
	Requests []screener.SubscriptionRequest `json:"requests"`
}

// StockListResponse is returned by GET /stocks.
type StockListResponse struct {
	Success bool             `json:"success"`
	Stocks  []screener.Stock `json:"stocks"`
}

// CreateStockRequest is the body of POST /stocks.
type CreateStockRequest struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Sector        string  `json:"sector"`
	Price         float64 `json:"price"`
	ChangePercent float64 `json:"change_percent"`
}

// CreateStockResponse is returned by POST /stocks.
type CreateStockResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Stock   screener.Stock `json:"stock"`
}

// UpdatePriceRequest is the body of PUT /stocks/{id}/price.
type UpdatePriceRequest struct {
	Price float64 `json:"price"`
}
