package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentfolio/rentfolio-cli/internal/core/domain"
)

func setupTestBlobStore(t *testing.T) *BlobStore {
	t.Helper()

	store, err := NewBlobStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestBlobStore_PutAndFetch(t *testing.T) {
	store := setupTestBlobStore(t)
	ctx := context.Background()

	err := store.Put(ctx, "profile-1/PAY_STUB_1_2025.pdf", []byte("%PDF-1.4 stub"))
	require.NoError(t, err)

	data, err := store.Fetch(ctx, "profile-1/PAY_STUB_1_2025.pdf")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 stub"), data)
}

func TestBlobStore_PutOverwrites(t *testing.T) {
	store := setupTestBlobStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "p/doc.pdf", []byte("first")))
	require.NoError(t, store.Put(ctx, "p/doc.pdf", []byte("second")))

	data, err := store.Fetch(ctx, "p/doc.pdf")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), data)
}

func TestBlobStore_FetchMissing(t *testing.T) {
	store := setupTestBlobStore(t)

	_, err := store.Fetch(context.Background(), "profile-1/nope.pdf")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBlobStore_Delete(t *testing.T) {
	store := setupTestBlobStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "p/doc.pdf", []byte("data")))
	require.NoError(t, store.Delete(ctx, "p/doc.pdf"))

	_, err := store.Fetch(ctx, "p/doc.pdf")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBlobStore_DeleteMissing(t *testing.T) {
	store := setupTestBlobStore(t)

	err := store.Delete(context.Background(), "p/nope.pdf")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBlobStore_RejectsEscapingPaths(t *testing.T) {
	store := setupTestBlobStore(t)
	ctx := context.Background()

	tests := []struct {
		name string
		path string
		want error
	}{
		{name: "empty", path: "", want: domain.ErrInvalidInput},
		{name: "parent traversal", path: "../outside.pdf", want: domain.ErrUnauthorized},
		{name: "nested traversal", path: "p/../../outside.pdf", want: domain.ErrUnauthorized},
		{name: "absolute", path: "/etc/passwd", want: domain.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Fetch(ctx, tt.path)
			assert.ErrorIs(t, err, tt.want)

			err = store.Put(ctx, tt.path, []byte("x"))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBlobStore_InternalDotSegmentsAllowed(t *testing.T) {
	store := setupTestBlobStore(t)
	ctx := context.Background()

	// "a/../b" cleans to "b", which stays inside the root.
	require.NoError(t, store.Put(ctx, "a/../b.pdf", []byte("ok")))

	data, err := store.Fetch(ctx, "b.pdf")
	require.NoError(t, err)
	assert.Equal(t, []byte("ok"), data)
}

func TestBlobStore_CreatesNestedDirectories(t *testing.T) {
	store := setupTestBlobStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "profile-1/docs/W_2_2024.pdf", []byte("w2")))

	info, err := os.Stat(filepath.Join(store.Root(), "profile-1", "docs", "W_2_2024.pdf"))
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}

func TestBlobStore_CancelledContext(t *testing.T) {
	store := setupTestBlobStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Fetch(ctx, "p/doc.pdf")
	assert.ErrorIs(t, err, context.Canceled)
}
