package infra_redis_room_lock

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDriver(t *testing.T, ttl time.Duration) (*Driver, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return New(client, "room-lock", ttl), srv
}

func TestAcquireIsExclusive(t *testing.T) {
	d, srv := newDriver(t, time.Minute)
	roomID := uuid.New()

	token, ok, err := d.Acquire(roomID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotEmpty(t, token)
	assert.True(t, srv.Exists("room-lock:"+roomID.String()))

	_, ok, err = d.Acquire(roomID)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = d.Acquire(uuid.New())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestReleaseKeepsForeignLock(t *testing.T) {
	d, srv := newDriver(t, time.Minute)
	roomID := uuid.New()

	token, ok, err := d.Acquire(roomID)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, d.Release(roomID, "stale-token"))
	assert.True(t, srv.Exists("room-lock:"+roomID.String()))

	require.NoError(t, d.Release(roomID, token))
	assert.False(t, srv.Exists("room-lock:"+roomID.String()))

	_, ok, err = d.Acquire(roomID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLockExpires(t *testing.T) {
	d, srv := newDriver(t, 10*time.Second)
	roomID := uuid.New()

	_, ok, err := d.Acquire(roomID)
	require.NoError(t, err)
	require.True(t, ok)

	srv.FastForward(11 * time.Second)

	_, ok, err = d.Acquire(roomID)
	require.NoError(t, err)
	assert.True(t, ok)
}
