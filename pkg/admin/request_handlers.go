// Handlers for the subscription request workflow.

package admin

import (
	"fmt"
	"net/http"
)

// Workflow actions accepted by the resolve endpoint. Both outcomes are
// terminal and remove the request from the pending set.
const (
	actionApprove = "approve"
	actionReject  = "reject"
)

// handleListSubscriptionRequests handles GET /admin/api/subscription-requests.
func (a *API) handleListSubscriptionRequests(w http.ResponseWriter, r *http.Request) {
	if !a.requireAdmin(w, r) {
		return
	}
	writeJSON(w, http.StatusOK, RequestListResponse{
		Success:  true,
		Requests: a.requests.List(),
	})
}

// handleResolveSubscriptionRequest handles
// POST /admin/api/subscription-requests/{id}/{action}.
//
// Approval applies the user's tier change before removing the request, so
// an interrupted approval is observable as "request still pending, user
// already upgraded" rather than a lost upgrade. A request whose user has
// since been deleted is still approved; the tier change is simply skipped.
func (a *API) handleResolveSubscriptionRequest(w http.ResponseWriter, r *http.Request) {
	if !a.requireAdmin(w, r) {
		return
	}

	id := r.PathValue("id")
	action := r.PathValue("action")

	req, ok := a.requests.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, MsgRequestNotFound)
		return
	}

	switch action {
	case actionApprove:
		if !a.users.SetTier(req.UserID, req.RequestedTier) {
			a.log.Warn("approved request references missing user",
				"request_id", id, "user_id", req.UserID)
		}
		a.requests.Remove(id)
		a.log.Info("subscription request approved",
			"request_id", id, "user_id", req.UserID, "tier", req.RequestedTier)
		writeMessage(w, fmt.Sprintf("Subscription upgraded to %s", req.RequestedTier))

	case actionReject:
		a.requests.Remove(id)
		a.log.Info("subscription request rejected", "request_id", id)
		writeMessage(w, "Subscription request rejected")

	default:
		writeError(w, http.StatusBadRequest, MsgInvalidAction)
	}
}
