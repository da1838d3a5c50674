// Per-IP rate limiting for the back office API.

package admin

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// DefaultRateLimit is the default requests per second limit.
const DefaultRateLimit float64 = 100

// DefaultBurstSize is the default burst size.
const DefaultBurstSize int = 200

// rateLimitCleanupInterval is how often stale buckets are removed.
const rateLimitCleanupInterval = 1 * time.Minute

// rateLimitEntryTTL is how long a bucket lives without activity.
const rateLimitEntryTTL = 1 * time.Minute

// tokenBucket tracks the allowance for a single client IP.
type tokenBucket struct {
	mu         sync.Mutex
	tokens     float64
	lastUpdate time.Time
}

// RateLimiter implements per-IP rate limiting using token buckets.
type RateLimiter struct {
	rps       float64
	burst     int
	mu        sync.RWMutex
	buckets   map[string]*tokenBucket
	stopCh    chan struct{}
	stoppedCh chan struct{}
}

// NewRateLimiter creates a rate limiter with the given requests-per-second
// rate and burst size, and starts its stale-bucket cleanup goroutine.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	if rps <= 0 {
		rps = DefaultRateLimit
	}
	if burst <= 0 {
		burst = DefaultBurstSize
	}
	rl := &RateLimiter{
		rps:       rps,
		burst:     burst,
		buckets:   make(map[string]*tokenBucket),
		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
	go rl.cleanup()
	return rl
}

// allow reports whether a request from the given IP may proceed, along with
// the remaining allowance and a retry-after hint in seconds.
func (rl *RateLimiter) allow(ip string) (bool, int, int64) {
	now := time.Now()

	rl.mu.RLock()
	bucket, exists := rl.buckets[ip]
	rl.mu.RUnlock()

	if !exists {
		rl.mu.Lock()
		bucket, exists = rl.buckets[ip]
		if !exists {
			bucket = &tokenBucket{tokens: float64(rl.burst), lastUpdate: now}
			rl.buckets[ip] = bucket
		}
		rl.mu.Unlock()
	}

	bucket.mu.Lock()
	defer bucket.mu.Unlock()

	elapsed := now.Sub(bucket.lastUpdate).Seconds()
	bucket.tokens += elapsed * rl.rps
	if bucket.tokens > float64(rl.burst) {
		bucket.tokens = float64(rl.burst)
	}
	bucket.lastUpdate = now

	if bucket.tokens >= 1 {
		bucket.tokens--
		return true, int(bucket.tokens), 0
	}

	retryAfter := int64((1 - bucket.tokens) / rl.rps)
	if retryAfter < 1 {
		retryAfter = 1
	}
	return false, 0, retryAfter
}

// cleanup periodically removes buckets with no recent activity.
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rateLimitCleanupInterval)
	defer ticker.Stop()
	defer close(rl.stoppedCh)

	for {
		select {
		case <-ticker.C:
			rl.removeStaleEntries()
		case <-rl.stopCh:
			return
		}
	}
}

func (rl *RateLimiter) removeStaleEntries() {
	cutoff := time.Now().Add(-rateLimitEntryTTL)

	rl.mu.Lock()
	defer rl.mu.Unlock()
	for ip, bucket := range rl.buckets {
		bucket.mu.Lock()
		if bucket.lastUpdate.Before(cutoff) {
			delete(rl.buckets, ip)
		}
		bucket.mu.Unlock()
	}
}

// Stop stops the cleanup goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stopCh)
	<-rl.stoppedCh
}

// Middleware enforces the rate limit before handing off to next.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, remaining, retryAfter := rl.allow(clientIP(r))

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.burst))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			w.Header().Set("Retry-After", strconv.FormatInt(retryAfter, 10))
			writeError(w, http.StatusTooManyRequests, "Too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP extracts the client IP from the request. Forwarding headers are
// only meaningful behind a trusted reverse proxy that overwrites them.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if first, _, ok := strings.Cut(xff, ","); ok {
			return strings.TrimSpace(first)
		}
		return strings.TrimSpace(xff)
	}
	if rip := r.Header.Get("X-Real-IP"); rip != "" {
		return rip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
