package driven

import (
	"context"

	"github.com/rentfolio/rentfolio-cli/internal/core/domain"
)

// DocumentStore persists uploaded document records.
// Backed by SQLite for metadata storage; content lives in the BlobStore.
type DocumentStore interface {
	// Save stores or updates a document record.
	Save(ctx context.Context, doc *domain.SourceDocument) error

	// Get retrieves a document record by ID.
	Get(ctx context.Context, id string) (*domain.SourceDocument, error)

	// ListByProfile returns all document records owned by a profile,
	// most recently updated first.
	ListByProfile(ctx context.Context, profileID string) ([]domain.SourceDocument, error)

	// Delete removes a document record.
	Delete(ctx context.Context, id string) error
}
