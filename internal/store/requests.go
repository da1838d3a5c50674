package store

import (
	"sync"

	"github.com/tradinggrow/backoffice/pkg/screener"
)

// RequestStore is a thread-safe in-memory set of pending subscription
// upgrade requests. Approving or rejecting a request removes it; no
// resolved-request history is kept.
type RequestStore struct {
	mu       sync.RWMutex
	requests []screener.SubscriptionRequest
}

// NewRequestStore creates a RequestStore holding a copy of the given records.
func NewRequestStore(seed ...screener.SubscriptionRequest) *RequestStore {
	s := &RequestStore{requests: make([]screener.SubscriptionRequest, len(seed))}
	copy(s.requests, seed)
	return s
}

// List returns all pending requests in insertion order.
func (s *RequestStore) List() []screener.SubscriptionRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]screener.SubscriptionRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// Get retrieves a pending request by ID.
func (s *RequestStore) Get(id string) (screener.SubscriptionRequest, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.requests {
		if r.ID == id {
			return r, true
		}
	}
	return screener.SubscriptionRequest{}, false
}

// Count returns the number of pending requests.
func (s *RequestStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.requests)
}

// Remove deletes the request with the given ID. Returns true if a request
// was removed.
func (s *RequestStore) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.requests[:0]
	removed := false
	for _, r := range s.requests {
		if r.ID == id {
			removed = true
			continue
		}
		kept = append(kept, r)
	}
	s.requests = kept
	return removed
}
