package services

import (
	"context"

	"github.com/rentfolio/rentfolio-cli/internal/core/domain"
	"github.com/rentfolio/rentfolio-cli/internal/core/ports/driven"
	"github.com/rentfolio/rentfolio-cli/internal/core/ports/driving"
)

// Ensure ApartmentService implements the interface.
var _ driving.ApartmentService = (*ApartmentService)(nil)

// ApartmentService manages a profile's saved apartments.
type ApartmentService struct {
	apartments driven.ApartmentStore
}

// NewApartmentService creates a new apartment service.
func NewApartmentService(apartments driven.ApartmentStore) *ApartmentService {
	return &ApartmentService{apartments: apartments}
}

// ListByProfile returns the profile's known apartments.
func (s *ApartmentService) ListByProfile(ctx context.Context, profileID string) ([]domain.ApartmentRecord, error) {
	return s.apartments.ListByProfile(ctx, profileID)
}

// Delete removes a saved apartment, scoped to the owning profile.
func (s *ApartmentService) Delete(ctx context.Context, profileID, apartmentID string) error {
	return s.apartments.Delete(ctx, profileID, apartmentID)
}
