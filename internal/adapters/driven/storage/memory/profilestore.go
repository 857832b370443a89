package memory

import (
	"context"
	"sync"

	"github.com/rentfolio/rentfolio-cli/internal/core/domain"
	"github.com/rentfolio/rentfolio-cli/internal/core/ports/driven"
)

// Ensure ProfileStore implements the interface.
var _ driven.ProfileStore = (*ProfileStore)(nil)

// ProfileStore is an in-memory implementation of driven.ProfileStore.
type ProfileStore struct {
	mu      sync.RWMutex
	profile *domain.Profile
}

// NewProfileStore creates a new in-memory profile store.
func NewProfileStore() *ProfileStore {
	return &ProfileStore{}
}

// Save stores or updates the profile.
func (s *ProfileStore) Save(_ context.Context, profile *domain.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *profile
	s.profile = &copied
	return nil
}

// Get retrieves the profile.
func (s *ProfileStore) Get(_ context.Context) (*domain.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return nil, domain.ErrNotFound
	}
	copied := *s.profile
	return &copied, nil
}
