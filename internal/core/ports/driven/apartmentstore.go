package driven

import (
	"context"

	"github.com/rentfolio/rentfolio-cli/internal/core/domain"
)

// ApartmentStore persists known apartment records.
//
// At most one record exists per (profile, address, unit) identity, compared
// case-insensitively. Implementations enforce this with a unique constraint on
// the lowercased identity so concurrent reconciliations for the same identity
// serialize instead of producing duplicates; a violated constraint surfaces as
// domain.ErrAlreadyExists.
type ApartmentStore interface {
	// FindByIdentity returns the record matching (profileID, address, unit)
	// case-insensitively, or domain.ErrNotFound.
	FindByIdentity(ctx context.Context, profileID, address, unit string) (*domain.ApartmentRecord, error)

	// Insert stores a new record. Returns domain.ErrAlreadyExists if a record
	// with the same identity already exists for the profile.
	Insert(ctx context.Context, rec *domain.ApartmentRecord) error

	// UpdateLeaseTerms overwrites the lease-term fields of an existing record.
	UpdateLeaseTerms(ctx context.Context, id, leaseStartDate, offeredRent string) error

	// ListByProfile returns all records for a profile, most recently
	// reconciled first.
	ListByProfile(ctx context.Context, profileID string) ([]domain.ApartmentRecord, error)

	// Delete removes a record, scoped to its owning profile.
	Delete(ctx context.Context, profileID, id string) error
}
