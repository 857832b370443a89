package driven

import (
	"context"

	"github.com/rentfolio/rentfolio-cli/internal/core/domain"
)

// ProfileStore persists the local applicant identity.
// Rentfolio is single-user: one profile row, created on first save.
type ProfileStore interface {
	// Save stores or updates the profile.
	Save(ctx context.Context, profile *domain.Profile) error

	// Get retrieves the profile, or domain.ErrNotFound if none was saved yet.
	Get(ctx context.Context) (*domain.Profile, error)
}
