package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentfolio/rentfolio-cli/internal/core/domain"
)

func TestProfileStore_RoundTrip(t *testing.T) {
	store := NewProfileStore()
	ctx := context.Background()

	_, err := store.Get(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, store.Save(ctx, &domain.Profile{
		ID:        "profile-1",
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@x.com",
	}))

	got, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Jane", got.FirstName)

	// Mutating the returned profile must not affect the stored one.
	got.FirstName = "Changed"
	again, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Jane", again.FirstName)
}
