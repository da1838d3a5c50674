package admin

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/tradinggrow/backoffice/pkg/session"
)

// Client-facing error messages. The taxonomy is deliberately closed:
// unauthorized, per-entity not-found, invalid workflow action, and invalid
// numeric input on stock creation.
const (
	MsgUnauthorized    = "Unauthorized"
	MsgUserNotFound    = "User not found"
	MsgStockNotFound   = "Stock not found"
	MsgRequestNotFound = "Request not found"
	MsgInvalidAction   = "Invalid action"
	MsgInvalidPrice    = "Invalid price"
	MsgInvalidJSON     = "Invalid request body"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeMessage writes a success confirmation.
func writeMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, MessageResponse{Success: true, Message: message})
}

// authorized is the gate in front of every administrative operation. It
// returns true only when the request carries a session identity whose
// admin flag is set; every other shape (no session, non-admin user) is a
// uniform deny. It never errors.
func (a *API) authorized(r *http.Request) bool {
	id, ok := session.FromContext(r.Context())
	return ok && id.IsAdmin
}

// requireAdmin applies the gate and writes the 401 response on denial.
// Handlers call it first and stop when it returns false.
func (a *API) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if !a.authorized(r) {
		writeError(w, http.StatusUnauthorized, MsgUnauthorized)
		return false
	}
	return true
}

// decodeJSONBody decodes a JSON request body. A missing or empty body
// leaves dst untouched, mirroring form posts from the admin UI that omit
// optional payloads.
func decodeJSONBody(r *http.Request, dst any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return nil
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}

// handleHealth handles GET /health.
func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	version := a.version
	if version == "" {
		version = "dev"
	}
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: version,
		Uptime:  a.Uptime(),
	})
}
