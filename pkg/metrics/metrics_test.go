package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRequestAppearsInExposition(t *testing.T) {
	reg := New()
	reg.ObserveRequest(http.MethodGet, "GET /admin/api/users", http.StatusOK, 5*time.Millisecond)
	reg.ObserveRequest(http.MethodGet, "GET /admin/api/users", http.StatusOK, 7*time.Millisecond)
	reg.ObserveRequest(http.MethodPut, "PUT /admin/api/users/{id}", http.StatusNotFound, time.Millisecond)

	rec := httptest.NewRecorder()
	reg.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `backoffice_http_requests_total{method="GET",path="GET /admin/api/users",status="200"} 2`)
	assert.Contains(t, body, `backoffice_http_requests_total{method="PUT",path="PUT /admin/api/users/{id}",status="404"} 1`)
	assert.Contains(t, body, "backoffice_http_request_duration_seconds_bucket")
}

func TestRegistriesAreIsolated(t *testing.T) {
	a := New()
	b := New()
	a.ObserveRequest(http.MethodGet, "GET /health", http.StatusOK, time.Millisecond)

	rec := httptest.NewRecorder()
	b.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.NotContains(t, rec.Body.String(), "backoffice_http_requests_total")
}
