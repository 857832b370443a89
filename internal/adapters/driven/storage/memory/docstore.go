// Package memory provides in-memory implementations of the driven store
// interfaces, used in tests and as reference implementations.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/rentfolio/rentfolio-cli/internal/core/domain"
	"github.com/rentfolio/rentfolio-cli/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is an in-memory implementation of driven.DocumentStore.
type DocumentStore struct {
	mu        sync.RWMutex
	documents map[string]domain.SourceDocument
}

// NewDocumentStore creates a new in-memory document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		documents: make(map[string]domain.SourceDocument),
	}
}

// Save stores or updates a document record.
func (s *DocumentStore) Save(_ context.Context, doc *domain.SourceDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[doc.ID] = *doc
	return nil
}

// Get retrieves a document record by ID.
func (s *DocumentStore) Get(_ context.Context, id string) (*domain.SourceDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &doc, nil
}

// ListByProfile returns all document records owned by a profile.
func (s *DocumentStore) ListByProfile(_ context.Context, profileID string) ([]domain.SourceDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var docs []domain.SourceDocument
	for _, doc := range s.documents {
		if doc.ProfileID == profileID {
			docs = append(docs, doc)
		}
	}
	sort.Slice(docs, func(i, j int) bool {
		return docs[i].UpdatedAt.After(docs[j].UpdatedAt)
	})
	return docs, nil
}

// Delete removes a document record.
func (s *DocumentStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.documents, id)
	return nil
}
