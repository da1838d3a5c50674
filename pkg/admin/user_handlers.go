// Handlers for the user directory and dashboard.

package admin

import (
	"fmt"
	"net/http"

	"github.com/tradinggrow/backoffice/internal/store"
	"github.com/tradinggrow/backoffice/pkg/screener"
)

// totalScreenings is a placeholder until the screening engine reports real
// run counts to the back office.
const totalScreenings = 89

// recentScreenings is the illustrative list shown on the dashboard. The
// screening engine owns the real data; the back office only displays it.
var recentScreenings = []ScreeningSummary{
	{ID: 1, Name: "High Growth Stocks", ResultsCount: 23, CreatedAt: "2024-03-15T10:00:00Z"},
	{ID: 2, Name: "Value Stocks", ResultsCount: 18, CreatedAt: "2024-03-14T15:30:00Z"},
}

// handleDashboardData handles GET /admin/api/dashboard-data.
func (a *API) handleDashboardData(w http.ResponseWriter, r *http.Request) {
	if !a.requireAdmin(w, r) {
		return
	}

	counts := a.users.TierCounts()
	writeJSON(w, http.StatusOK, DashboardResponse{
		Success: true,
		Data: DashboardData{
			Stats: DashboardStats{
				TotalUsers:      a.users.Count(),
				ProUsers:        counts[screener.TierPro],
				MediumUsers:     counts[screener.TierMedium],
				FreeUsers:       counts[screener.TierFree],
				TotalScreenings: totalScreenings,
			},
			Screenings: recentScreenings,
		},
	})
}

// handleListUsers handles GET /admin/api/users.
func (a *API) handleListUsers(w http.ResponseWriter, r *http.Request) {
	if !a.requireAdmin(w, r) {
		return
	}
	writeJSON(w, http.StatusOK, UserListResponse{
		Success: true,
		Users:   a.users.List(),
	})
}

// handleUpdateUser handles PUT /admin/api/users/{id}. Fields absent from
// the body retain their stored values.
func (a *API) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	if !a.requireAdmin(w, r) {
		return
	}

	var req UpdateUserRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, MsgInvalidJSON)
		return
	}

	id := r.PathValue("id")
	ok := a.users.Update(id, store.UserUpdate{
		Email:            req.Email,
		FullName:         req.FullName,
		SubscriptionTier: req.SubscriptionTier,
		IsAdmin:          req.IsAdmin,
	})
	if !ok {
		writeError(w, http.StatusNotFound, MsgUserNotFound)
		return
	}

	a.log.Info("user updated", "user_id", id)
	writeMessage(w, "User updated successfully")
}

// handleDeleteUser handles DELETE /admin/api/users/{id}. Deleting an absent
// user succeeds with the collection unchanged: delete is an idempotent
// no-op, unlike update which reports not-found.
func (a *API) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	if !a.requireAdmin(w, r) {
		return
	}

	id := r.PathValue("id")
	a.users.Delete(id)

	a.log.Info("user deleted", "user_id", id)
	writeMessage(w, "User deleted successfully")
}

// handleUpdateUserSubscription handles PUT /admin/api/users/{id}/subscription.
// The tier is accepted verbatim; membership in the known tier set is not
// enforced here.
func (a *API) handleUpdateUserSubscription(w http.ResponseWriter, r *http.Request) {
	if !a.requireAdmin(w, r) {
		return
	}

	var req UpdateSubscriptionRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, MsgInvalidJSON)
		return
	}

	id := r.PathValue("id")
	if !a.users.SetTier(id, req.SubscriptionTier) {
		writeError(w, http.StatusNotFound, MsgUserNotFound)
		return
	}

	a.log.Info("subscription updated", "user_id", id, "tier", req.SubscriptionTier)
	writeMessage(w, fmt.Sprintf("Subscription updated to %s", req.SubscriptionTier))
}

// handleBulkUpgrade handles POST /admin/api/bulk-upgrade. Admin accounts
// are exempt from bulk tier migration; zero matches is a successful outcome.
func (a *API) handleBulkUpgrade(w http.ResponseWriter, r *http.Request) {
	if !a.requireAdmin(w, r) {
		return
	}

	var req BulkUpgradeRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, MsgInvalidJSON)
		return
	}

	updated := a.users.BulkRetier(req.FromTier, req.ToTier)

	a.log.Info("bulk upgrade", "from", req.FromTier, "to", req.ToTier, "updated", updated)
	writeJSON(w, http.StatusOK, BulkUpgradeResponse{
		Success:      true,
		Message:      fmt.Sprintf("Upgraded %d users from %s to %s", updated, req.FromTier, req.ToTier),
		UpdatedCount: updated,
	})
}
