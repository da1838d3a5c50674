package session

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultCookieName is the cookie the session token is read from.
const DefaultCookieName = "tg_session"

// DefaultTTL is the default session token lifetime.
const DefaultTTL = 24 * time.Hour

// ErrNoSecret is returned when a Manager is created without a signing secret.
var ErrNoSecret = errors.New("session secret is required")

// ErrInvalidToken is returned when a token fails signature or claim checks.
var ErrInvalidToken = errors.New("invalid session token")

// Identity is the authenticated user a session resolves to. It carries
// exactly what the back office consumes from a session: who the user is and
// whether they hold the admin flag.
type Identity struct {
	UserID  string
	Email   string
	IsAdmin bool
}

// Config holds session manager configuration.
type Config struct {
	// Secret is the HMAC signing secret shared with the session issuer.
	Secret string

	// TTL is the token lifetime for newly issued tokens. Defaults to DefaultTTL.
	TTL time.Duration

	// CookieName is the cookie the middleware reads. Defaults to DefaultCookieName.
	CookieName string
}

// Manager issues and verifies session tokens.
type Manager struct {
	secret     []byte
	ttl        time.Duration
	cookieName string

	// now is swappable for expiry tests.
	now func() time.Time
}

// NewManager creates a Manager from the given configuration.
func NewManager(cfg Config) (*Manager, error) {
	if cfg.Secret == "" {
		return nil, ErrNoSecret
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.CookieName == "" {
		cfg.CookieName = DefaultCookieName
	}
	return &Manager{
		secret:     []byte(cfg.Secret),
		ttl:        cfg.TTL,
		cookieName: cfg.CookieName,
		now:        time.Now,
	}, nil
}

// GenerateSecret returns a random hex secret suitable for development
// setups that don't share a secret with the web app.
func GenerateSecret() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// CookieName returns the cookie the middleware reads the token from.
func (m *Manager) CookieName() string {
	return m.cookieName
}

// sessionClaims is the JWT claim set for a session token.
type sessionClaims struct {
	Email   string `json:"email,omitempty"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// Issue creates a signed session token for the given identity.
func (m *Manager) Issue(id Identity) (string, error) {
	now := m.now()
	claims := sessionClaims{
		Email:   id.Email,
		IsAdmin: id.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return token, nil
}

// Verify parses and validates a session token, returning the identity it
// carries. Expired or tampered tokens return ErrInvalidToken.
func (m *Manager) Verify(token string) (Identity, error) {
	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return Identity{}, ErrInvalidToken
	}
	return Identity{
		UserID:  claims.Subject,
		Email:   claims.Email,
		IsAdmin: claims.IsAdmin,
	}, nil
}
