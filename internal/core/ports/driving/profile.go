package driving

import (
	"context"

	"github.com/rentfolio/rentfolio-cli/internal/core/domain"
)

// ProfileService manages the local applicant identity.
type ProfileService interface {
	// Get retrieves the saved profile, or domain.ErrNotFound.
	Get(ctx context.Context) (*domain.Profile, error)

	// Save validates and stores the profile, creating it on first use.
	Save(ctx context.Context, profile *domain.Profile) error
}
