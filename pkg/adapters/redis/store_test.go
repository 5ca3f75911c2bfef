package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/failtrace/pkg/adapters/redis"
	"github.com/aretw0/failtrace/pkg/domain"
	"github.com/aretw0/failtrace/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err, "Failed to start miniredis")
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisStore_Contract(t *testing.T) {
	_, client := newClient(t)

	store := redis.NewFromClient(client)
	ports.RunKVStoreContract(t, store)
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	mr, client := newClient(t)

	store := redis.NewFromClient(client, redis.WithTTL(1*time.Second))
	ctx := context.Background()
	key := "session:ttl"

	require.NoError(t, store.Put(ctx, key, []byte(`{"path":["start"]}`)))

	keys, err := store.Keys(ctx, "session:")
	require.NoError(t, err)
	assert.Contains(t, keys, key)

	// Fast Forward time in miniredis (for Key Expiration)
	mr.FastForward(2 * time.Second)

	_, err = store.Get(ctx, key)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// The index is pruned against the wall clock, so wait past the TTL.
	time.Sleep(1200 * time.Millisecond)

	keys, err = store.Keys(ctx, "session:")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestRedisStore_PersistentKeys(t *testing.T) {
	mr, client := newClient(t)

	store := redis.NewFromClient(client, redis.WithTTL(time.Hour), redis.WithPersistentKeys("agent-checklist"))
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "session:a", []byte("x")))
	require.NoError(t, store.Put(ctx, "agent-checklist", []byte("{}")))

	assert.Equal(t, time.Hour, mr.TTL(redis.DefaultPrefix+"session:a"))
	assert.Zero(t, mr.TTL(redis.DefaultPrefix+"agent-checklist"))

	mr.FastForward(2 * time.Hour)

	_, err := store.Get(ctx, "session:a")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	got, err := store.Get(ctx, "agent-checklist")
	require.NoError(t, err)
	assert.Equal(t, []byte("{}"), got)
}

func TestRedisStore_Prefix(t *testing.T) {
	mr, client := newClient(t)

	store := redis.NewFromClient(client, redis.WithPrefix("custom:app:"))
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "session:mine", []byte("x")))

	assert.True(t, mr.Exists("custom:app:session:mine"), "Expected key with custom prefix to exist")
	assert.True(t, mr.Exists("custom:app:index"), "Expected index with custom prefix to exist")

	keys, err := store.Keys(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"session:mine"}, keys)
}

func TestRedisStore_Ping(t *testing.T) {
	mr, client := newClient(t)
	store := redis.NewFromClient(client)

	require.NoError(t, store.Ping(context.Background()))

	mr.Close()
	assert.Error(t, store.Ping(context.Background()))
}
