package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/failtrace/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunKVStoreContract runs a suite of tests to verify that a KVStore implementation
// adheres to the defined interface contract.
func RunKVStoreContract(t *testing.T, store KVStore) {
	ctx := context.Background()
	key := "contract:" + time.Now().Format("20060102150405")

	t.Run("Put and Get", func(t *testing.T) {
		err := store.Put(ctx, key, []byte(`{"path":["start"]}`))
		require.NoError(t, err, "Put should not return error")

		got, err := store.Get(ctx, key)
		require.NoError(t, err, "Get should not return error")
		assert.Equal(t, `{"path":["start"]}`, string(got))
	})

	t.Run("Put Overwrites", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, key, []byte("v1")))
		require.NoError(t, store.Put(ctx, key, []byte("v2")))

		got, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "v2", string(got))
	})

	t.Run("Get Non-Existent", func(t *testing.T) {
		_, err := store.Get(ctx, "non-existent:"+key)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Returned Value Is Isolated", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, key, []byte("abc")))
		got, err := store.Get(ctx, key)
		require.NoError(t, err)
		got[0] = 'X'

		again, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "abc", string(again))
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, key, []byte("gone soon")))

		err := store.Delete(ctx, key)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Get(ctx, key)
		assert.ErrorIs(t, err, domain.ErrNotFound, "Get after Delete should return ErrNotFound")

		assert.NoError(t, store.Delete(ctx, key), "Deleting a missing key is not an error")
	})

	t.Run("Keys", func(t *testing.T) {
		k1 := "session:" + key + "-1"
		k2 := "session:" + key + "-2"
		other := "checklist:" + key
		require.NoError(t, store.Put(ctx, k1, []byte("1")))
		require.NoError(t, store.Put(ctx, k2, []byte("2")))
		require.NoError(t, store.Put(ctx, other, []byte("3")))

		defer func() {
			_ = store.Delete(ctx, k1)
			_ = store.Delete(ctx, k2)
			_ = store.Delete(ctx, other)
		}()

		keys, err := store.Keys(ctx, "session:")
		require.NoError(t, err)
		assert.Contains(t, keys, k1)
		assert.Contains(t, keys, k2)
		assert.NotContains(t, keys, other)
		assert.IsNonDecreasing(t, keys)
	})
}
