package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentfolio/rentfolio-cli/internal/adapters/driven/storage/memory"
	"github.com/rentfolio/rentfolio-cli/internal/core/domain"
)

func TestReconciler_CreatesOnFirstSight(t *testing.T) {
	apartments := memory.NewApartmentStore()
	r := NewReconciler(apartments)
	ctx := context.Background()

	outcome, err := r.Reconcile(ctx, "profile-1", domain.ApplicationMetadata{
		BuildingAddress: "123 Main St",
		ApartmentNo:     "4",
		LeaseStartDate:  "2025-06-01",
		OfferedRent:     "2200",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ReconcileCreated, outcome)

	rec, err := apartments.FindByIdentity(ctx, "profile-1", "123 Main St", "4")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01", rec.LeaseStartDate)
	assert.Equal(t, "2200", rec.OfferedRent)
}

func TestReconciler_SingleSlotOverwrite(t *testing.T) {
	apartments := memory.NewApartmentStore()
	r := NewReconciler(apartments)
	ctx := context.Background()

	meta := domain.ApplicationMetadata{
		BuildingAddress: "123 Main St",
		ApartmentNo:     "4",
		LeaseStartDate:  "2025-06-01",
		OfferedRent:     "2200",
	}
	_, err := r.Reconcile(ctx, "profile-1", meta)
	require.NoError(t, err)

	// Same identity, different terms: exactly one record, the new terms win.
	meta.OfferedRent = "2350"
	meta.LeaseStartDate = "2025-09-01"
	outcome, err := r.Reconcile(ctx, "profile-1", meta)
	require.NoError(t, err)
	assert.Equal(t, domain.ReconcileUpdated, outcome)

	recs, err := apartments.ListByProfile(ctx, "profile-1")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "2350", recs[0].OfferedRent)
	assert.Equal(t, "2025-09-01", recs[0].LeaseStartDate)
}

func TestReconciler_IdentityIsCaseInsensitive(t *testing.T) {
	apartments := memory.NewApartmentStore()
	r := NewReconciler(apartments)
	ctx := context.Background()

	_, err := r.Reconcile(ctx, "profile-1", domain.ApplicationMetadata{
		BuildingAddress: "123 Main St", ApartmentNo: "4B",
		LeaseStartDate: "2025-06-01", OfferedRent: "2200",
	})
	require.NoError(t, err)

	outcome, err := r.Reconcile(ctx, "profile-1", domain.ApplicationMetadata{
		BuildingAddress: "123 MAIN ST", ApartmentNo: "4b",
		LeaseStartDate: "2025-06-01", OfferedRent: "2400",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ReconcileUpdated, outcome)

	recs, err := apartments.ListByProfile(ctx, "profile-1")
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}

func TestReconciler_EmptyAddressIsNoOp(t *testing.T) {
	apartments := memory.NewApartmentStore()
	r := NewReconciler(apartments)

	outcome, err := r.Reconcile(context.Background(), "profile-1", domain.ApplicationMetadata{
		BuildingAddress: "   ",
		LeaseStartDate:  "2025-06-01",
		OfferedRent:     "2200",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ReconcileUnchanged, outcome)

	recs, err := apartments.ListByProfile(context.Background(), "profile-1")
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestReconciler_PersistsNormalizedAddress(t *testing.T) {
	apartments := memory.NewApartmentStore()
	r := NewReconciler(apartments)
	ctx := context.Background()

	_, err := r.Reconcile(ctx, "profile-1", domain.ApplicationMetadata{
		BuildingAddress: "  123 Main St,   Apt 4 ",
		LeaseStartDate:  "2025-06-01",
		OfferedRent:     "2200",
	})
	require.NoError(t, err)

	recs, err := apartments.ListByProfile(ctx, "profile-1")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "123 Main St, Apt 4", recs[0].BuildingAddress)
}

func TestReconciler_StoreFailure(t *testing.T) {
	r := NewReconciler(failingApartmentStore{})

	outcome, err := r.Reconcile(context.Background(), "profile-1", domain.ApplicationMetadata{
		BuildingAddress: "1 Elm St",
		LeaseStartDate:  "2025-06-01",
		OfferedRent:     "2200",
	})
	assert.ErrorIs(t, err, domain.ErrReconciliation)
	assert.Equal(t, domain.ReconcileUnchanged, outcome)
}

// racingApartmentStore simulates losing an insert race: the first lookup
// misses, the insert hits the unique constraint, the second lookup finds the
// winner's record.
type racingApartmentStore struct {
	*memory.ApartmentStore
	raced bool
}

func (s *racingApartmentStore) FindByIdentity(ctx context.Context, profileID, address, unit string) (*domain.ApartmentRecord, error) {
	if !s.raced {
		return nil, domain.ErrNotFound
	}
	return s.ApartmentStore.FindByIdentity(ctx, profileID, address, unit)
}

func (s *racingApartmentStore) Insert(ctx context.Context, rec *domain.ApartmentRecord) error {
	if !s.raced {
		s.raced = true
		winner := *rec
		winner.ID = "apt-winner"
		_ = s.ApartmentStore.Insert(ctx, &winner)
		return domain.ErrAlreadyExists
	}
	return s.ApartmentStore.Insert(ctx, rec)
}

func TestReconciler_InsertRaceFoldsIntoWinner(t *testing.T) {
	store := &racingApartmentStore{ApartmentStore: memory.NewApartmentStore()}
	r := NewReconciler(store)
	ctx := context.Background()

	outcome, err := r.Reconcile(ctx, "profile-1", domain.ApplicationMetadata{
		BuildingAddress: "1 Elm St",
		LeaseStartDate:  "2025-06-01",
		OfferedRent:     "2200",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ReconcileUpdated, outcome)

	recs, err := store.ApartmentStore.ListByProfile(ctx, "profile-1")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "apt-winner", recs[0].ID)
}
