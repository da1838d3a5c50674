package store

import (
	"sync"

	"github.com/tradinggrow/backoffice/pkg/screener"
)

// UserUpdate carries the fields of a partial user update. Nil fields are
// left untouched; non-nil fields overwrite the stored value as-is (no tier
// or email validation, matching the admin UI contract).
type UserUpdate struct {
	Email            *string
	FullName         *string
	SubscriptionTier *string
	IsAdmin          *bool
}

// UserStore is a thread-safe in-memory user directory.
type UserStore struct {
	mu    sync.RWMutex
	users []screener.User
}

// NewUserStore creates a UserStore holding a copy of the given records.
func NewUserStore(seed ...screener.User) *UserStore {
	s := &UserStore{users: make([]screener.User, len(seed))}
	copy(s.users, seed)
	return s
}

// List returns all users in insertion order.
func (s *UserStore) List() []screener.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]screener.User, len(s.users))
	copy(out, s.users)
	return out
}

// Get retrieves a user by ID.
func (s *UserStore) Get(id string) (screener.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return screener.User{}, false
}

// Count returns the number of users.
func (s *UserStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// TierCounts returns the number of users per subscription tier.
func (s *UserStore) TierCounts() map[screener.Tier]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[screener.Tier]int)
	for _, u := range s.users {
		counts[u.SubscriptionTier]++
	}
	return counts
}

// Update applies a partial update to the user with the given ID.
// Returns false if no user matches.
func (s *UserStore) Update(id string, upd UserUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID != id {
			continue
		}
		if upd.Email != nil {
			s.users[i].Email = *upd.Email
		}
		if upd.FullName != nil {
			s.users[i].FullName = *upd.FullName
		}
		if upd.SubscriptionTier != nil {
			s.users[i].SubscriptionTier = *upd.SubscriptionTier
		}
		if upd.IsAdmin != nil {
			s.users[i].IsAdmin = *upd.IsAdmin
		}
		return true
	}
	return false
}

// SetTier overwrites the subscription tier of the user with the given ID.
// Any string is accepted as a tier. Returns false if no user matches.
func (s *UserStore) SetTier(id string, tier screener.Tier) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].SubscriptionTier = tier
			return true
		}
	}
	return false
}

// Delete removes the user with the given ID. Deleting an absent ID is a
// no-op, not an error: delete is idempotent by contract.
func (s *UserStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.users[:0]
	for _, u := range s.users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	s.users = kept
}

// BulkRetier moves every non-admin user currently on the from tier onto the
// to tier and returns the number of users changed. Admin accounts are
// exempt. Zero matches is a valid outcome.
func (s *UserStore) BulkRetier(from, to screener.Tier) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	updated := 0
	for i := range s.users {
		if s.users[i].SubscriptionTier == from && !s.users[i].IsAdmin {
			s.users[i].SubscriptionTier = to
			updated++
		}
	}
	return updated
}
