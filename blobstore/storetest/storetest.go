// Package storetest provides a conformance suite for blobstore.Store
// implementations.
package storetest

import (
	"context"
	"testing"

	"github.com/hupe1980/halfvec/blobstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run exercises the Store contract against an empty store.
func Run(t *testing.T, store blobstore.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("GetMissing", func(t *testing.T) {
		_, err := store.Get(ctx, "missing")
		assert.ErrorIs(t, err, blobstore.ErrNotFound)
	})

	t.Run("PutGet", func(t *testing.T) {
		data := []byte("hello halfvec")
		require.NoError(t, store.Put(ctx, "batches/a.hvb", data))

		// Mutating the caller's slice must not leak into the store.
		data[0] = 'J'

		got, err := store.Get(ctx, "batches/a.hvb")
		require.NoError(t, err)
		assert.Equal(t, []byte("hello halfvec"), got)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "batches/b.hvb", []byte("v1")))
		require.NoError(t, store.Put(ctx, "batches/b.hvb", []byte("v2")))

		got, err := store.Get(ctx, "batches/b.hvb")
		require.NoError(t, err)
		assert.Equal(t, []byte("v2"), got)
	})

	t.Run("List", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "other/c.hvb", []byte{1}))

		names, err := store.List(ctx, "batches/")
		require.NoError(t, err)
		assert.Equal(t, []string{"batches/a.hvb", "batches/b.hvb"}, names)

		all, err := store.List(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, []string{"batches/a.hvb", "batches/b.hvb", "other/c.hvb"}, all)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "other/c.hvb"))
		require.NoError(t, store.Delete(ctx, "other/c.hvb"))

		_, err := store.Get(ctx, "other/c.hvb")
		assert.ErrorIs(t, err, blobstore.ErrNotFound)
	})
}
