package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rentfolio/rentfolio-cli/internal/core/domain"
	"github.com/rentfolio/rentfolio-cli/internal/core/ports/driven"
	"github.com/rentfolio/rentfolio-cli/internal/core/ports/driving"
)

// Ensure ProfileService implements the interface.
var _ driving.ProfileService = (*ProfileService)(nil)

// ProfileService manages the local applicant identity.
type ProfileService struct {
	profiles driven.ProfileStore
}

// NewProfileService creates a new profile service.
func NewProfileService(profiles driven.ProfileStore) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// Get retrieves the saved profile.
func (s *ProfileService) Get(ctx context.Context) (*domain.Profile, error) {
	return s.profiles.Get(ctx)
}

// Save validates and stores the profile, assigning an ID on first save.
func (s *ProfileService) Save(ctx context.Context, profile *domain.Profile) error {
	profile.FirstName = strings.TrimSpace(profile.FirstName)
	profile.LastName = strings.TrimSpace(profile.LastName)
	profile.Email = strings.TrimSpace(profile.Email)
	profile.Phone = strings.TrimSpace(profile.Phone)

	if profile.FirstName == "" || profile.LastName == "" {
		return fmt.Errorf("%w: first and last name are required", domain.ErrInvalidInput)
	}
	if profile.Email == "" || !strings.Contains(profile.Email, "@") {
		return fmt.Errorf("%w: a valid email is required", domain.ErrInvalidInput)
	}

	if profile.ID == "" {
		profile.ID = uuid.New().String()
		profile.CreatedAt = time.Now().UTC()
	}
	profile.UpdatedAt = time.Now().UTC()

	return s.profiles.Save(ctx, profile)
}
