package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rentfolio/rentfolio-cli/internal/core/domain"
	"github.com/rentfolio/rentfolio-cli/internal/core/ports/driven"
	"github.com/rentfolio/rentfolio-cli/internal/logger"
)

// Reconciler folds one assembly's lease terms into the known apartments store.
//
// Single-slot policy: the case-insensitive (address, unit) pair identifies at
// most one record per profile. An existing record gets its lease-term fields
// overwritten unconditionally; a missing one is created. An empty address
// after trimming is a no-op.
type Reconciler struct {
	apartments driven.ApartmentStore
}

// NewReconciler creates a new apartment reconciler.
func NewReconciler(apartments driven.ApartmentStore) *Reconciler {
	return &Reconciler{apartments: apartments}
}

// Reconcile persists the metadata's lease terms under the apartment identity.
// The address is stored in normalized form. Failures wrap
// domain.ErrReconciliation; the caller decides how loudly to report them.
func (r *Reconciler) Reconcile(ctx context.Context, profileID string, meta domain.ApplicationMetadata) (domain.ReconcileOutcome, error) {
	address := domain.NormalizeAddress(meta.BuildingAddress)
	if address == "" {
		return domain.ReconcileUnchanged, nil
	}
	unit := strings.TrimSpace(meta.ApartmentNo)
	leaseStart := strings.TrimSpace(meta.LeaseStartDate)
	rent := strings.TrimSpace(meta.OfferedRent)

	existing, err := r.apartments.FindByIdentity(ctx, profileID, address, unit)
	switch {
	case err == nil:
		if err := r.apartments.UpdateLeaseTerms(ctx, existing.ID, leaseStart, rent); err != nil {
			return domain.ReconcileUnchanged, fmt.Errorf("%w: updating %s: %v", domain.ErrReconciliation, existing.DisplayName(), err)
		}
		logger.Debug("Updated apartment record %s", existing.ID)
		return domain.ReconcileUpdated, nil

	case errors.Is(err, domain.ErrNotFound):
		rec := &domain.ApartmentRecord{
			ID:              uuid.New().String(),
			ProfileID:       profileID,
			BuildingAddress: address,
			ApartmentNo:     unit,
			LeaseStartDate:  leaseStart,
			OfferedRent:     rent,
			CreatedAt:       time.Now().UTC(),
			UpdatedAt:       time.Now().UTC(),
		}
		if err := r.apartments.Insert(ctx, rec); err != nil {
			// A concurrent assembly for the same identity won the insert.
			// Fold into the winner instead of failing.
			if errors.Is(err, domain.ErrAlreadyExists) {
				return r.reconcileRace(ctx, profileID, address, unit, leaseStart, rent)
			}
			return domain.ReconcileUnchanged, fmt.Errorf("%w: inserting %s: %v", domain.ErrReconciliation, rec.DisplayName(), err)
		}
		logger.Debug("Created apartment record %s", rec.ID)
		return domain.ReconcileCreated, nil

	default:
		return domain.ReconcileUnchanged, fmt.Errorf("%w: looking up apartment: %v", domain.ErrReconciliation, err)
	}
}

// reconcileRace resolves a lost insert race by updating the record the
// concurrent winner created.
func (r *Reconciler) reconcileRace(ctx context.Context, profileID, address, unit, leaseStart, rent string) (domain.ReconcileOutcome, error) {
	existing, err := r.apartments.FindByIdentity(ctx, profileID, address, unit)
	if err != nil {
		return domain.ReconcileUnchanged, fmt.Errorf("%w: re-finding apartment after insert race: %v", domain.ErrReconciliation, err)
	}
	if err := r.apartments.UpdateLeaseTerms(ctx, existing.ID, leaseStart, rent); err != nil {
		return domain.ReconcileUnchanged, fmt.Errorf("%w: updating %s: %v", domain.ErrReconciliation, existing.DisplayName(), err)
	}
	return domain.ReconcileUpdated, nil
}
