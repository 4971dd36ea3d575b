//go:build unit

package nag

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T, opts ...RedisOption) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	t.Cleanup(func() { _ = client.Close() })

	return NewRedisStore(client, KindOnLoad, opts...), mr
}

func TestRedisStore_RecordAndNagged(t *testing.T) {
	t.Parallel()

	store, _ := newTestRedisStore(t)

	assert.False(t, store.Nagged("acme-widgets"))

	store.Record("acme-widgets", testEntry())

	assert.True(t, store.Nagged("acme-widgets"))
	assert.False(t, store.Nagged("other-lib"))
}

func TestRedisStore_RecordIdempotent(t *testing.T) {
	t.Parallel()

	store, mr := newTestRedisStore(t)

	first := testEntry()
	store.Record("acme-widgets", first)

	original, err := mr.Get("floss-funding:on_load:nag:acme-widgets")
	require.NoError(t, err)

	second := testEntry()
	second.State = "invalid"
	store.Record("acme-widgets", second)

	// SET NX: the original entry survives.
	current, err := mr.Get("floss-funding:on_load:nag:acme-widgets")
	require.NoError(t, err)
	assert.Equal(t, original, current)
}

func TestRedisStore_EntryExpires(t *testing.T) {
	t.Parallel()

	store, mr := newTestRedisStore(t, WithRedisMaxAge(MinMaxAge))

	store.Record("acme-widgets", testEntry())
	require.True(t, store.Nagged("acme-widgets"))

	mr.FastForward(MinMaxAge + time.Minute)

	// TTL expiry is the rotation analogue: reminders can recur afterwards.
	assert.False(t, store.Nagged("acme-widgets"))
}

func TestRedisStore_Touch(t *testing.T) {
	t.Parallel()

	store, mr := newTestRedisStore(t)
	store.Touch()

	assert.True(t, mr.Exists("floss-funding:on_load:created"))
}

func TestRedisStore_BrokenBackendDegrades(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	store := NewRedisStore(client, KindAtExit)

	mr.Close()
	_ = client.Close()

	// A dead backend means "no throttling", never a failure.
	assert.False(t, store.Nagged("acme-widgets"))
	store.Record("acme-widgets", testEntry())
	store.Touch()
}

func TestRedisStore_NilReceiver(t *testing.T) {
	t.Parallel()

	var store *RedisStore

	assert.False(t, store.Nagged("anything"))
	store.Record("anything", testEntry())
	store.Touch()
	store.Rotate()
}
