package memory

import (
	"context"
	"sync"

	"github.com/rentfolio/rentfolio-cli/internal/core/domain"
	"github.com/rentfolio/rentfolio-cli/internal/core/ports/driven"
)

// Ensure BlobStore implements the interface.
var _ driven.BlobStore = (*BlobStore)(nil)

// BlobStore is an in-memory implementation of driven.BlobStore.
type BlobStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewBlobStore creates a new in-memory blob store.
func NewBlobStore() *BlobStore {
	return &BlobStore{
		blobs: make(map[string][]byte),
	}
}

// Fetch returns the raw bytes stored at path.
func (s *BlobStore) Fetch(_ context.Context, path string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.blobs[path]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := make([]byte, len(data))
	copy(copied, data)
	return copied, nil
}

// Put stores data at path, overwriting any previous content.
func (s *BlobStore) Put(_ context.Context, path string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make([]byte, len(data))
	copy(copied, data)
	s.blobs[path] = copied
	return nil
}

// Delete removes the content at path.
func (s *BlobStore) Delete(_ context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.blobs[path]; !ok {
		return domain.ErrNotFound
	}
	delete(s.blobs, path)
	return nil
}
