package driven

import "context"

// BlobStore holds document content addressed by opaque path.
// Backed by the filesystem locally; any object store fits the contract.
//
// Implementations map their failure modes onto the domain taxonomy:
// a missing path is domain.ErrNotFound, a path outside the caller's reach is
// domain.ErrUnauthorized, and retryable I/O failures wrap domain.ErrTransientIO.
type BlobStore interface {
	// Fetch returns the raw bytes stored at path.
	Fetch(ctx context.Context, path string) ([]byte, error)

	// Put stores data at path, overwriting any previous content.
	Put(ctx context.Context, path string, data []byte) error

	// Delete removes the content at path. Deleting a missing path is an error.
	Delete(ctx context.Context, path string) error
}
