package screener

// Tier is a subscription level.
type Tier = string

// Subscription tiers, lowest to highest.
const (
	TierFree   Tier = "free"
	TierMedium Tier = "medium"
	TierPro    Tier = "pro"
)

// User is an account in the user directory.
type User struct {
	ID               string `json:"id"`
	Email            string `json:"email"`
	FullName         string `json:"full_name"`
	SubscriptionTier Tier   `json:"subscription_tier"`
	IsAdmin          bool   `json:"is_admin"`
	CreatedAt        string `json:"created_at"`
}

// Stock is an entry in the stock catalog.
type Stock struct {
	ID            string  `json:"id"`
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Sector        string  `json:"sector"`
	Price         float64 `json:"price"`
	ChangePercent float64 `json:"change_percent"`
}

// SubscriptionRequest is a pending tier upgrade awaiting an admin decision.
// UserName and UserEmail are copies taken when the request was filed; they
// are not refreshed if the referenced user changes afterwards.
type SubscriptionRequest struct {
	ID            string `json:"id"`
	UserID        string `json:"user_id"`
	UserName      string `json:"user_name"`
	UserEmail     string `json:"user_email"`
	CurrentTier   Tier   `json:"current_tier"`
	RequestedTier Tier   `json:"requested_tier"`
	CreatedAt     string `json:"created_at"`
}
