// Package config loads and validates backofficed configuration.
//
// Configuration comes from a YAML or JSON file (format auto-detected by
// extension), with CLI flags layered on top by the cli package. All fields
// have working defaults except the session secret, which must be shared
// with the session issuer.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Defaults.
const (
	DefaultListen     = ":4380"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"
	DefaultSessionTTL = "24h"
	DefaultRateRPS    = 100
	DefaultRateBurst  = 200
)

// ErrInvalidConfig is wrapped by all validation failures.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the full backofficed configuration.
type Config struct {
	// Listen is the address the admin API binds to.
	Listen string `yaml:"listen" json:"listen"`

	Log       LogConfig       `yaml:"log" json:"log"`
	Session   SessionConfig   `yaml:"session" json:"session"`
	RateLimit RateLimitConfig `yaml:"rate_limit" json:"rate_limit"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
}

// SessionConfig configures session token verification.
type SessionConfig struct {
	// Secret is the HMAC secret shared with the session issuer. When empty,
	// serve generates a random one and logs it (dev mode only).
	Secret string `yaml:"secret" json:"secret"`

	// TTL is the lifetime of tokens minted by this service, as a Go
	// duration string.
	TTL string `yaml:"ttl" json:"ttl"`

	// CookieName overrides the session cookie name.
	CookieName string `yaml:"cookie_name" json:"cookie_name"`
}

// RateLimitConfig configures the per-IP request limiter.
type RateLimitConfig struct {
	RPS   float64 `yaml:"rps" json:"rps"`
	Burst int     `yaml:"burst" json:"burst"`
}

// Default returns a Config populated with defaults.
func Default() Config {
	return Config{
		Listen: DefaultListen,
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Session: SessionConfig{
			TTL: DefaultSessionTTL,
		},
		RateLimit: RateLimitConfig{
			RPS:   DefaultRateRPS,
			Burst: DefaultRateBurst,
		},
	}
}

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	if c.Listen == "" {
		return fmt.Errorf("%w: listen address is empty", ErrInvalidConfig)
	}
	if _, err := c.SessionTTL(); err != nil {
		return err
	}
	if c.RateLimit.RPS < 0 {
		return fmt.Errorf("%w: rate_limit.rps must not be negative", ErrInvalidConfig)
	}
	if c.RateLimit.Burst < 0 {
		return fmt.Errorf("%w: rate_limit.burst must not be negative", ErrInvalidConfig)
	}
	return nil
}

// SessionTTL parses the session TTL string.
func (c *Config) SessionTTL() (time.Duration, error) {
	if c.Session.TTL == "" {
		c.Session.TTL = DefaultSessionTTL
	}
	d, err := time.ParseDuration(c.Session.TTL)
	if err != nil {
		return 0, fmt.Errorf("%w: session.ttl: %v", ErrInvalidConfig, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: session.ttl must be positive", ErrInvalidConfig)
	}
	return d, nil
}
