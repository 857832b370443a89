package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentfolio/rentfolio-cli/internal/core/domain"
)

func TestDocumentStore_SaveAndGet(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	doc := &domain.SourceDocument{
		ID:        "doc-1",
		ProfileID: "profile-1",
		Filename:  "PAY_STUB_1_2025",
		Path:      "profile-1/PAY_STUB_1_2025.pdf",
	}
	require.NoError(t, store.Save(ctx, doc))

	got, err := store.Get(ctx, "doc-1")
	require.NoError(t, err)
	assert.Equal(t, "PAY_STUB_1_2025", got.Filename)
	assert.Equal(t, "profile-1/PAY_STUB_1_2025.pdf", got.Path)
}

func TestDocumentStore_GetNotFound(t *testing.T) {
	store := NewDocumentStore()

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentStore_ListByProfile(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	now := time.Now()
	_ = store.Save(ctx, &domain.SourceDocument{ID: "doc-1", ProfileID: "profile-1", UpdatedAt: now.Add(-time.Hour)})
	_ = store.Save(ctx, &domain.SourceDocument{ID: "doc-2", ProfileID: "profile-1", UpdatedAt: now})
	_ = store.Save(ctx, &domain.SourceDocument{ID: "doc-3", ProfileID: "profile-2", UpdatedAt: now})

	docs, err := store.ListByProfile(ctx, "profile-1")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "doc-2", docs[0].ID) // most recently updated first
}

func TestDocumentStore_Delete(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	_ = store.Save(ctx, &domain.SourceDocument{ID: "doc-1", ProfileID: "profile-1"})
	require.NoError(t, store.Delete(ctx, "doc-1"))

	_, err := store.Get(ctx, "doc-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
