package kvstore_test

import (
	"context"
	"testing"

	"github.com/lorrc/medspa-leads-backend/internal/adapters/secondary/kvstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("get returns what was set", func(t *testing.T) {
		store := kvstore.NewMemoryStore()

		require.NoError(t, store.Set(ctx, "lead:1", `{"id":"1"}`))

		value, ok, err := store.Get(ctx, "lead:1")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `{"id":"1"}`, value)
	})

	t.Run("get reports a missing key without error", func(t *testing.T) {
		store := kvstore.NewMemoryStore()

		_, ok, err := store.Get(ctx, "lead:missing")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("set overwrites an existing key", func(t *testing.T) {
		store := kvstore.NewMemoryStore()

		require.NoError(t, store.Set(ctx, "lead:1", "old"))
		require.NoError(t, store.Set(ctx, "lead:1", "new"))

		value, ok, err := store.Get(ctx, "lead:1")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "new", value)
	})

	t.Run("list returns matching keys in sorted order", func(t *testing.T) {
		store := kvstore.NewMemoryStore()

		require.NoError(t, store.Set(ctx, "lead:2", "b"))
		require.NoError(t, store.Set(ctx, "lead:1", "a"))
		require.NoError(t, store.Set(ctx, "other:1", "c"))

		keys, err := store.List(ctx, "lead:")
		require.NoError(t, err)
		assert.Equal(t, []string{"lead:1", "lead:2"}, keys)
	})

	t.Run("ping and close never fail", func(t *testing.T) {
		store := kvstore.NewMemoryStore()

		assert.NoError(t, store.Ping(ctx))
		assert.NoError(t, store.Close())
	})
}

func TestFactory(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to the memory backend", func(t *testing.T) {
		store, err := kvstore.New(ctx, kvstore.Config{})
		require.NoError(t, err)
		assert.IsType(t, &kvstore.MemoryStore{}, store)
	})

	t.Run("rejects an unknown backend", func(t *testing.T) {
		_, err := kvstore.New(ctx, kvstore.Config{Backend: "dynamo"})
		assert.Error(t, err)
	})
}
