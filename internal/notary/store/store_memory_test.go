package store

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notary/internal/notary/models"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("load before save reports not initialized", func(t *testing.T) {
		s := NewMemoryStore()
		_, err := s.Load(ctx)
		assert.ErrorIs(t, err, ErrNotInitialized)

		ok, err := s.Initialized(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("save then load round trips", func(t *testing.T) {
		s := NewMemoryStore()
		state := models.NewState("admin")
		state.Settings["FEE_AMT"] = "10"
		require.NoError(t, s.Save(ctx, state))

		ok, err := s.Initialized(ctx)
		require.NoError(t, err)
		assert.True(t, ok)

		loaded, err := s.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, models.Address("admin"), loaded.Admin)
		assert.Equal(t, "10", loaded.Settings["FEE_AMT"])
	})

	t.Run("stored snapshot is isolated from callers", func(t *testing.T) {
		s := NewMemoryStore()
		hash, err := models.ParseHash(strings.Repeat("33", 32))
		require.NoError(t, err)

		state := models.NewState("admin")
		require.NoError(t, s.Save(ctx, state))

		// Mutating the saved-in value must not affect the store.
		state.Documents[hash] = models.Document{Hash: hash}

		loaded, err := s.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, loaded.Documents)

		// Mutating a loaded value must not affect subsequent loads.
		loaded.Settings["VER_REQ"] = "true"
		again, err := s.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, again.Settings)
	})
}
