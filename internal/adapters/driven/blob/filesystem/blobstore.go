// Package filesystem provides a filesystem-backed implementation of the
// BlobStore port. Opaque paths map to files under a root directory.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rentfolio/rentfolio-cli/internal/core/domain"
	"github.com/rentfolio/rentfolio-cli/internal/core/ports/driven"
)

// Ensure BlobStore implements the interface.
var _ driven.BlobStore = (*BlobStore)(nil)

// BlobStore stores document content as files under a root directory.
type BlobStore struct {
	root string
}

// NewBlobStore creates a blob store rooted at dir.
// If dir is empty, defaults to ~/.rentfolio/documents.
func NewBlobStore(dir string) (*BlobStore, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dir = filepath.Join(home, ".rentfolio", "documents")
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("creating blob directory: %w", err)
	}

	return &BlobStore{root: dir}, nil
}

// Root returns the blob root directory.
func (s *BlobStore) Root() string {
	return s.root
}

// Fetch returns the raw bytes stored at path.
func (s *BlobStore) Fetch(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	full, err := s.resolve(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(full)
	if err != nil {
		return nil, classify(path, err)
	}
	return data, nil
}

// Put stores data at path, overwriting any previous content.
func (s *BlobStore) Put(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	full, err := s.resolve(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(full), 0700); err != nil {
		return classify(path, err)
	}
	if err := os.WriteFile(full, data, 0600); err != nil {
		return classify(path, err)
	}
	return nil
}

// Delete removes the content at path.
func (s *BlobStore) Delete(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	full, err := s.resolve(path)
	if err != nil {
		return err
	}

	if err := os.Remove(full); err != nil {
		return classify(path, err)
	}
	return nil
}

// resolve maps an opaque path to a file under the root, rejecting anything
// that would escape it.
func (s *BlobStore) resolve(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty path", domain.ErrInvalidInput)
	}
	clean := filepath.Clean(filepath.FromSlash(path))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: path %q", domain.ErrUnauthorized, path)
	}
	return filepath.Join(s.root, clean), nil
}

// classify maps filesystem failures onto the domain taxonomy.
func classify(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s", domain.ErrNotFound, path)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %s", domain.ErrUnauthorized, path)
	default:
		return fmt.Errorf("%w: %s: %v", domain.ErrTransientIO, path, err)
	}
}
