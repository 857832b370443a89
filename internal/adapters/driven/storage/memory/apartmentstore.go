package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rentfolio/rentfolio-cli/internal/core/domain"
	"github.com/rentfolio/rentfolio-cli/internal/core/ports/driven"
)

// Ensure ApartmentStore implements the interface.
var _ driven.ApartmentStore = (*ApartmentStore)(nil)

// ApartmentStore is an in-memory implementation of driven.ApartmentStore.
// A single mutex serializes all writes, which also serializes concurrent
// reconciliations per identity the way the SQLite unique index does.
type ApartmentStore struct {
	mu         sync.RWMutex
	apartments map[string]domain.ApartmentRecord
}

// NewApartmentStore creates a new in-memory apartment store.
func NewApartmentStore() *ApartmentStore {
	return &ApartmentStore{
		apartments: make(map[string]domain.ApartmentRecord),
	}
}

// FindByIdentity returns the record matching (profileID, address, unit)
// case-insensitively.
func (s *ApartmentStore) FindByIdentity(_ context.Context, profileID, address, unit string) (*domain.ApartmentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.apartments {
		if rec.ProfileID == profileID && rec.SameIdentity(address, unit) {
			found := rec
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Insert stores a new record, enforcing identity uniqueness per profile.
func (s *ApartmentStore) Insert(_ context.Context, rec *domain.ApartmentRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.apartments {
		if existing.ProfileID == rec.ProfileID && existing.SameIdentity(rec.BuildingAddress, rec.ApartmentNo) {
			return domain.ErrAlreadyExists
		}
	}
	s.apartments[rec.ID] = *rec
	return nil
}

// UpdateLeaseTerms overwrites the lease-term fields of an existing record.
func (s *ApartmentStore) UpdateLeaseTerms(_ context.Context, id, leaseStartDate, offeredRent string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.apartments[id]
	if !ok {
		return domain.ErrNotFound
	}
	rec.LeaseStartDate = leaseStartDate
	rec.OfferedRent = offeredRent
	rec.UpdatedAt = time.Now().UTC()
	s.apartments[id] = rec
	return nil
}

// ListByProfile returns all records for a profile, most recent first.
func (s *ApartmentStore) ListByProfile(_ context.Context, profileID string) ([]domain.ApartmentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var recs []domain.ApartmentRecord
	for _, rec := range s.apartments {
		if rec.ProfileID == profileID {
			recs = append(recs, rec)
		}
	}
	sort.Slice(recs, func(i, j int) bool {
		return recs[i].UpdatedAt.After(recs[j].UpdatedAt)
	})
	return recs, nil
}

// Delete removes a record, scoped to its owning profile.
func (s *ApartmentStore) Delete(_ context.Context, profileID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.apartments[id]
	if !ok || rec.ProfileID != profileID {
		return domain.ErrNotFound
	}
	delete(s.apartments, id)
	return nil
}
