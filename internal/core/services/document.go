package services

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rentfolio/rentfolio-cli/internal/core/domain"
	"github.com/rentfolio/rentfolio-cli/internal/core/ports/driven"
	"github.com/rentfolio/rentfolio-cli/internal/core/ports/driving"
	"github.com/rentfolio/rentfolio-cli/internal/logger"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService manages a profile's uploaded application documents:
// blob content plus the metadata record pointing at it.
type DocumentService struct {
	docStore driven.DocumentStore
	blobs    driven.BlobStore
}

// NewDocumentService creates a new document service.
func NewDocumentService(docStore driven.DocumentStore, blobs driven.BlobStore) *DocumentService {
	return &DocumentService{
		docStore: docStore,
		blobs:    blobs,
	}
}

// Upload stores the file content under "<profileID>/<TYPE>_<YEAR>.<ext>" and
// records it. Re-uploading the same type and year overwrites the blob and
// touches the existing record rather than creating a duplicate.
func (s *DocumentService) Upload(ctx context.Context, profileID string, docType domain.DocumentType,
	year int, originalFilename string, data []byte) (*domain.SourceDocument, error) {

	if !docType.IsValid() {
		return nil, fmt.Errorf("%w: unknown document type %q", domain.ErrInvalidInput, docType)
	}
	if err := domain.ValidateUploadYear(year, time.Now()); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty file", domain.ErrInvalidInput)
	}

	name := domain.DocumentName(docType, year)
	blobPath := profileID + "/" + name + extension(originalFilename)

	if err := s.blobs.Put(ctx, blobPath, data); err != nil {
		return nil, fmt.Errorf("storing content: %w", err)
	}

	doc := s.existingByName(ctx, profileID, name)
	if doc == nil {
		doc = &domain.SourceDocument{
			ID:        uuid.New().String(),
			ProfileID: profileID,
			Filename:  name,
			CreatedAt: time.Now().UTC(),
		}
	}
	doc.Path = blobPath
	doc.UpdatedAt = time.Now().UTC()

	if err := s.docStore.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("saving document record: %w", err)
	}

	logger.Info("Uploaded %s (%d bytes)", name, len(data))
	return doc, nil
}

// ListByProfile returns the profile's document records.
func (s *DocumentService) ListByProfile(ctx context.Context, profileID string) ([]domain.SourceDocument, error) {
	return s.docStore.ListByProfile(ctx, profileID)
}

// Delete removes a document record and its stored content.
func (s *DocumentService) Delete(ctx context.Context, profileID, documentID string) error {
	doc, err := s.docStore.Get(ctx, documentID)
	if err != nil {
		return err
	}
	if doc.ProfileID != profileID {
		return fmt.Errorf("%w: document %s", domain.ErrUnauthorized, documentID)
	}

	if err := s.blobs.Delete(ctx, doc.Path); err != nil {
		return fmt.Errorf("deleting content: %w", err)
	}
	return s.docStore.Delete(ctx, documentID)
}

// existingByName finds a prior upload of the same canonical name, if any.
func (s *DocumentService) existingByName(ctx context.Context, profileID, name string) *domain.SourceDocument {
	docs, err := s.docStore.ListByProfile(ctx, profileID)
	if err != nil {
		return nil
	}
	for i := range docs {
		if docs[i].Filename == name {
			return &docs[i]
		}
	}
	return nil
}

// extension returns the lowercased file extension including the dot,
// or empty when the name has none.
func extension(filename string) string {
	return strings.ToLower(path.Ext(filename))
}
