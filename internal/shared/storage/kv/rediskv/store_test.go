package rediskv

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiniredisStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewWithClient(client)
	t.Cleanup(func() { store.Close() })
	return store, mr
}

func TestRedisStoreRoundTrip(t *testing.T) {
	store, _ := newMiniredisStore(t)
	ctx := context.Background()

	_, ok, err := store.GetItem(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.SetItem(ctx, "history", `[{"id":"1"}]`))

	value, ok, err := store.GetItem(ctx, "history")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"1"}]`, value)

	require.NoError(t, store.RemoveItem(ctx, "history"))
	_, ok, err = store.GetItem(ctx, "history")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.RemoveItem(ctx, "history"), "removing absent key must succeed")
}

func TestRedisStoreOverwrite(t *testing.T) {
	store, _ := newMiniredisStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetItem(ctx, "k", "v1"))
	require.NoError(t, store.SetItem(ctx, "k", "v2"))

	value, ok, err := store.GetItem(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", value)
}

func TestRedisStoreValuesDoNotExpire(t *testing.T) {
	store, mr := newMiniredisStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetItem(ctx, "k", "v"))
	assert.Equal(t, int64(0), int64(mr.TTL("k")), "history values must have no TTL")
}

func TestRedisStoreServerDown(t *testing.T) {
	store, mr := newMiniredisStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetItem(ctx, "k", "v"))
	mr.Close()

	_, _, err := store.GetItem(ctx, "k")
	assert.Error(t, err)
	assert.Error(t, store.SetItem(ctx, "k", "v"))
}

func TestNewFailsFastWithoutServer(t *testing.T) {
	_, err := New(context.Background(), Config{Addr: "127.0.0.1:1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis ping failed")
}
