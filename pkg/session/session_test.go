package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(Config{Secret: "test-secret"})
	require.NoError(t, err)
	return m
}

func TestNewManagerRequiresSecret(t *testing.T) {
	_, err := NewManager(Config{})
	assert.ErrorIs(t, err, ErrNoSecret)
}

func TestIssueAndVerify(t *testing.T) {
	m := newTestManager(t)

	token, err := m.Issue(Identity{UserID: "1", Email: "admin@tradinggrow.com", IsAdmin: true})
	require.NoError(t, err)

	id, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "1", id.UserID)
	assert.Equal(t, "admin@tradinggrow.com", id.Email)
	assert.True(t, id.IsAdmin)
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	m := newTestManager(t)

	token, err := m.Issue(Identity{UserID: "1", IsAdmin: true})
	require.NoError(t, err)

	_, err = m.Verify(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.Verify("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	m := newTestManager(t)
	other, err := NewManager(Config{Secret: "different-secret"})
	require.NoError(t, err)

	token, err := other.Issue(Identity{UserID: "1", IsAdmin: true})
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	m, err := NewManager(Config{Secret: "test-secret", TTL: time.Minute})
	require.NoError(t, err)

	issued := time.Now()
	m.now = func() time.Time { return issued }
	token, err := m.Issue(Identity{UserID: "1", IsAdmin: true})
	require.NoError(t, err)

	m.now = func() time.Time { return issued.Add(2 * time.Minute) }
	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMiddlewareAttachesIdentityFromCookie(t *testing.T) {
	m := newTestManager(t)
	token, err := m.Issue(Identity{UserID: "1", IsAdmin: true})
	require.NoError(t, err)

	var got Identity
	var ok bool
	handler := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: m.CookieName(), Value: token})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.True(t, ok)
	assert.Equal(t, "1", got.UserID)
	assert.True(t, got.IsAdmin)
}

func TestMiddlewarePassesAnonymousThrough(t *testing.T) {
	m := newTestManager(t)

	var ok bool
	handler := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok = FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	// No token at all.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, ok)
	assert.Equal(t, http.StatusOK, rec.Code, "middleware never denies; that is the gate's job")

	// Invalid token is treated the same as none.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: m.CookieName(), Value: "bogus"})
	handler.ServeHTTP(httptest.NewRecorder(), req)
	assert.False(t, ok)
}

func TestMiddlewareReadsBearerHeader(t *testing.T) {
	m := newTestManager(t)
	token, err := m.Issue(Identity{UserID: "2"})
	require.NoError(t, err)

	var got Identity
	handler := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "2", got.UserID)
	assert.False(t, got.IsAdmin)
}

func TestGenerateSecret(t *testing.T) {
	a := GenerateSecret()
	b := GenerateSecret()
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}
