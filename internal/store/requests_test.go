package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradinggrow/backoffice/pkg/screener"
)

func TestRequestStoreGetAndList(t *testing.T) {
	s := NewRequestStore(screener.SeedSubscriptionRequests()...)

	require.Equal(t, 1, s.Count())

	req, ok := s.Get("1")
	require.True(t, ok)
	assert.Equal(t, "3", req.UserID)
	assert.Equal(t, screener.TierPro, req.RequestedTier)

	_, ok = s.Get("999")
	assert.False(t, ok)
}

func TestRequestStoreRemove(t *testing.T) {
	s := NewRequestStore(screener.SeedSubscriptionRequests()...)

	assert.True(t, s.Remove("1"))
	assert.Equal(t, 0, s.Count())

	// Removing again reports that nothing was removed.
	assert.False(t, s.Remove("1"))
}
