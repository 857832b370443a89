package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// commaSpacing matches a comma followed by any run of whitespace.
var commaSpacing = regexp.MustCompile(`,\s+`)

// NormalizeAddress canonicalises a building address for storage and identity
// comparison: leading/trailing whitespace is trimmed and any comma followed by
// whitespace collapses to a comma and a single space.
// Normalizing an already-normalized address is a no-op.
func NormalizeAddress(address string) string {
	return commaSpacing.ReplaceAllString(strings.TrimSpace(address), ", ")
}

// ApplicationMetadata carries the lease terms entered for one assembly run.
// It is transient input - validated once at the orchestrator boundary,
// rendered onto the cover page, and handed to the reconciler. It is never
// persisted as-is; the reconciler derives an ApartmentRecord from it.
type ApplicationMetadata struct {
	// BuildingAddress is the street address of the target building.
	BuildingAddress string

	// ApartmentNo is the unit within the building. Optional.
	ApartmentNo string

	// LeaseStartDate is the lease start in ISO form ("2006-01-02").
	LeaseStartDate string

	// OfferedRent is the monthly rent offer as entered, e.g. "2200" or
	// "2200.50". Kept as a string so the cover page and the stored record
	// reproduce the user's decimal exactly, with no float round-tripping.
	OfferedRent string
}

// Validate re-checks the fields the form layer should already have validated.
// A failure here means the cover page cannot be rendered truthfully, so it
// reports ErrSynthesis.
func (m ApplicationMetadata) Validate() error {
	if _, err := m.ParseLeaseStart(); err != nil {
		return err
	}
	if rent := strings.TrimSpace(m.OfferedRent); rent != "" {
		v, err := strconv.ParseFloat(rent, 64)
		if err != nil {
			return fmt.Errorf("%w: offered rent %q is not numeric", ErrSynthesis, m.OfferedRent)
		}
		if v < 0 {
			return fmt.Errorf("%w: offered rent %q is negative", ErrSynthesis, m.OfferedRent)
		}
	}
	return nil
}

// ParseLeaseStart parses LeaseStartDate as a calendar date.
// A malformed date reports ErrSynthesis rather than rendering garbage.
func (m ApplicationMetadata) ParseLeaseStart() (time.Time, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(m.LeaseStartDate))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: lease start date %q is not a valid date", ErrSynthesis, m.LeaseStartDate)
	}
	return t, nil
}

// ApartmentRecord is a persisted "known apartment" for a profile.
//
// Identity is the case-insensitive (BuildingAddress, ApartmentNo) pair: for a
// given profile at most one record exists per identity, and reconciling lease
// terms for an existing identity overwrites that record's LeaseStartDate and
// OfferedRent in place (single-slot policy).
type ApartmentRecord struct {
	// ID is the unique identifier for the record.
	ID string

	// ProfileID links to the owning profile.
	ProfileID string

	// BuildingAddress is the normalized street address (see NormalizeAddress).
	BuildingAddress string

	// ApartmentNo is the unit within the building. May be empty.
	ApartmentNo string

	// LeaseStartDate is the most recent lease start applied for, ISO form.
	LeaseStartDate string

	// OfferedRent is the most recent rent offered, as entered.
	OfferedRent string

	// CreatedAt is when the apartment was first recorded.
	CreatedAt time.Time

	// UpdatedAt is when the lease terms were last reconciled.
	UpdatedAt time.Time
}

// DisplayName returns the address with the unit appended when present,
// e.g. "123 Main St, Apt 4". Used for CLI listings and pre-fill pickers.
func (a *ApartmentRecord) DisplayName() string {
	if a.ApartmentNo != "" {
		return fmt.Sprintf("%s, Apt %s", a.BuildingAddress, a.ApartmentNo)
	}
	return a.BuildingAddress
}

// SameIdentity reports whether the record refers to the same apartment as the
// given (address, unit) pair, compared case-insensitively.
func (a *ApartmentRecord) SameIdentity(address, unit string) bool {
	return strings.EqualFold(a.BuildingAddress, address) && strings.EqualFold(a.ApartmentNo, unit)
}

// ReconcileOutcome reports what the reconciler did with the lease terms.
type ReconcileOutcome string

// Reconcile outcomes.
const (
	// ReconcileCreated means a new apartment record was inserted.
	ReconcileCreated ReconcileOutcome = "created"

	// ReconcileUpdated means an existing record's lease terms were overwritten.
	ReconcileUpdated ReconcileOutcome = "updated"

	// ReconcileUnchanged means nothing was persisted (empty address no-op).
	ReconcileUnchanged ReconcileOutcome = "unchanged"
)
