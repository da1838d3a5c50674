package admin

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradinggrow/backoffice/pkg/screener"
)

func TestHandleDashboardData(t *testing.T) {
	// Seed tiers: pro, pro, medium, free, free.
	api := newTestAPI(t)

	req := asAdmin(httptest.NewRequest(http.MethodGet, "/admin/api/dashboard-data", nil))
	rec := httptest.NewRecorder()
	api.handleDashboardData(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp DashboardResponse
	decodeBody(t, rec, &resp)

	assert.True(t, resp.Success)
	assert.Equal(t, 5, resp.Data.Stats.TotalUsers)
	assert.Equal(t, 2, resp.Data.Stats.ProUsers)
	assert.Equal(t, 1, resp.Data.Stats.MediumUsers)
	assert.Equal(t, 2, resp.Data.Stats.FreeUsers)
	assert.Equal(t, totalScreenings, resp.Data.Stats.TotalScreenings)
	require.Len(t, resp.Data.Screenings, 2)
	assert.Equal(t, "High Growth Stocks", resp.Data.Screenings[0].Name)
}

func TestHandleListUsers(t *testing.T) {
	api := newTestAPI(t)

	req := asAdmin(httptest.NewRequest(http.MethodGet, "/admin/api/users", nil))
	rec := httptest.NewRecorder()
	api.handleListUsers(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp UserListResponse
	decodeBody(t, rec, &resp)
	require.Len(t, resp.Users, 5)
	assert.Equal(t, "admin@tradinggrow.com", resp.Users[0].Email)
}

func TestHandleUpdateUserPartial(t *testing.T) {
	api := newTestAPI(t)

	body := bytes.NewBufferString(`{"email":"renamed@example.com"}`)
	req := asAdmin(httptest.NewRequest(http.MethodPut, "/admin/api/users/3", body))
	req.SetPathValue("id", "3")
	rec := httptest.NewRecorder()
	api.handleUpdateUser(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp MessageResponse
	decodeBody(t, rec, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, "User updated successfully", resp.Message)

	u, ok := api.users.Get("3")
	require.True(t, ok)
	assert.Equal(t, "renamed@example.com", u.Email)
	assert.Equal(t, "John Smith", u.FullName, "omitted field is retained")
	assert.Equal(t, screener.TierMedium, u.SubscriptionTier)
}

func TestHandleUpdateUserNotFound(t *testing.T) {
	api := newTestAPI(t)

	req := asAdmin(httptest.NewRequest(http.MethodPut, "/admin/api/users/999",
		bytes.NewBufferString(`{"email":"x@example.com"}`)))
	req.SetPathValue("id", "999")
	rec := httptest.NewRecorder()
	api.handleUpdateUser(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	var resp ErrorResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, MsgUserNotFound, resp.Error)
}

func TestHandleDeleteUserAlwaysSucceeds(t *testing.T) {
	api := newTestAPI(t)

	// First delete removes the user.
	req := asAdmin(httptest.NewRequest(http.MethodDelete, "/admin/api/users/4", nil))
	req.SetPathValue("id", "4")
	rec := httptest.NewRecorder()
	api.handleDeleteUser(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 4, api.users.Count())

	// Second delete of the same ID: same success response, collection
	// unchanged. Delete does not report not-found, unlike update.
	req = asAdmin(httptest.NewRequest(http.MethodDelete, "/admin/api/users/4", nil))
	req.SetPathValue("id", "4")
	rec = httptest.NewRecorder()
	api.handleDeleteUser(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp MessageResponse
	decodeBody(t, rec, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, "User deleted successfully", resp.Message)
	assert.Equal(t, 4, api.users.Count())
}

func TestHandleUpdateUserSubscription(t *testing.T) {
	api := newTestAPI(t)

	req := asAdmin(httptest.NewRequest(http.MethodPut, "/admin/api/users/4/subscription",
		bytes.NewBufferString(`{"subscription_tier":"pro"}`)))
	req.SetPathValue("id", "4")
	rec := httptest.NewRecorder()
	api.handleUpdateUserSubscription(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp MessageResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Subscription updated to pro", resp.Message)

	u, _ := api.users.Get("4")
	assert.Equal(t, screener.TierPro, u.SubscriptionTier)
}

func TestHandleUpdateUserSubscriptionNotFound(t *testing.T) {
	api := newTestAPI(t)

	req := asAdmin(httptest.NewRequest(http.MethodPut, "/admin/api/users/999/subscription",
		bytes.NewBufferString(`{"subscription_tier":"pro"}`)))
	req.SetPathValue("id", "999")
	rec := httptest.NewRecorder()
	api.handleUpdateUserSubscription(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleBulkUpgrade(t *testing.T) {
	api := newTestAPI(t)

	// Seed has two free users (4 and 5), both non-admin.
	req := asAdmin(httptest.NewRequest(http.MethodPost, "/admin/api/bulk-upgrade",
		bytes.NewBufferString(`{"from_tier":"free","to_tier":"medium"}`)))
	rec := httptest.NewRecorder()
	api.handleBulkUpgrade(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp BulkUpgradeResponse
	decodeBody(t, rec, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.UpdatedCount)
	assert.Equal(t, "Upgraded 2 users from free to medium", resp.Message)

	for _, id := range []string{"4", "5"} {
		u, _ := api.users.Get(id)
		assert.Equal(t, screener.TierMedium, u.SubscriptionTier)
	}
}

func TestHandleBulkUpgradeSkipsAdmins(t *testing.T) {
	api := newTestAPI(t)

	// The admin (user 1) is on pro; only the non-admin pro user moves.
	req := asAdmin(httptest.NewRequest(http.MethodPost, "/admin/api/bulk-upgrade",
		bytes.NewBufferString(`{"from_tier":"pro","to_tier":"free"}`)))
	rec := httptest.NewRecorder()
	api.handleBulkUpgrade(rec, req)

	var resp BulkUpgradeResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, 1, resp.UpdatedCount)

	admin, _ := api.users.Get("1")
	assert.Equal(t, screener.TierPro, admin.SubscriptionTier)
}

func TestHandleBulkUpgradeZeroMatches(t *testing.T) {
	api := newTestAPI(t)

	req := asAdmin(httptest.NewRequest(http.MethodPost, "/admin/api/bulk-upgrade",
		bytes.NewBufferString(`{"from_tier":"platinum","to_tier":"pro"}`)))
	rec := httptest.NewRecorder()
	api.handleBulkUpgrade(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp BulkUpgradeResponse
	decodeBody(t, rec, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, 0, resp.UpdatedCount)
}
