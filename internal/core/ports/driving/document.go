package driving

import (
	"context"

	"github.com/rentfolio/rentfolio-cli/internal/core/domain"
)

// DocumentService manages a profile's uploaded application documents.
type DocumentService interface {
	// Upload stores the file content and records it under the canonical
	// "<TYPE>_<YEAR>" name. Re-uploading the same type and year replaces the
	// previous content.
	Upload(ctx context.Context, profileID string, docType domain.DocumentType,
		year int, originalFilename string, data []byte) (*domain.SourceDocument, error)

	// ListByProfile returns the profile's document records.
	ListByProfile(ctx context.Context, profileID string) ([]domain.SourceDocument, error)

	// Delete removes a document record and its stored content.
	// Documents owned by another profile report domain.ErrUnauthorized.
	Delete(ctx context.Context, profileID, documentID string) error
}
