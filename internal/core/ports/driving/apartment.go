package driving

import (
	"context"

	"github.com/rentfolio/rentfolio-cli/internal/core/domain"
)

// ApartmentService manages a profile's saved apartments.
type ApartmentService interface {
	// ListByProfile returns the profile's known apartments.
	ListByProfile(ctx context.Context, profileID string) ([]domain.ApartmentRecord, error)

	// Delete removes a saved apartment, scoped to the owning profile.
	Delete(ctx context.Context, profileID, apartmentID string) error
}
