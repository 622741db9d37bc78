package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lane_wars/domain"
)

func TestRedisResultCache(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	c := NewRedisResultCache(client, time.Hour)
	ctx := context.Background()
	result := domain.SimulationResult{WaveID: 3, PushAzul: 3.3, PushVermelho: 4.5, Vencedor: domain.WinnerRed}

	t.Run("Miss", func(t *testing.T) {
		_, found, err := c.Load(ctx, 3)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Store And Load", func(t *testing.T) {
		require.NoError(t, c.Store(ctx, result))

		got, found, err := c.Load(ctx, 3)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, result, got)
		assert.True(t, srv.Exists("wave:result:3"))
		assert.Equal(t, time.Hour, srv.TTL("wave:result:3"))
	})

	t.Run("Expired", func(t *testing.T) {
		require.NoError(t, c.Store(ctx, result))
		srv.FastForward(2 * time.Hour)

		_, found, err := c.Load(ctx, 3)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Evict", func(t *testing.T) {
		require.NoError(t, c.Store(ctx, result))
		require.NoError(t, c.Evict(ctx, 3))

		_, found, err := c.Load(ctx, 3)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Corrupt Payload", func(t *testing.T) {
		require.NoError(t, srv.Set("wave:result:8", "{not json"))

		_, found, err := c.Load(ctx, 8)
		assert.Error(t, err)
		assert.False(t, found)
	})

	t.Run("Server Down", func(t *testing.T) {
		down := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
		t.Cleanup(func() { _ = down.Close() })

		err := NewRedisResultCache(down, time.Hour).Store(ctx, result)
		assert.Error(t, err)
	})
}

func TestMemoryResultCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryResultCache(time.Minute).(*memoryResultCache)
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	result := domain.SimulationResult{WaveID: 1, PushAzul: 2, PushVermelho: 2, Vencedor: domain.WinnerTie}
	require.NoError(t, c.Store(ctx, result))

	got, found, err := c.Load(ctx, 1)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, result, got)

	now = now.Add(2 * time.Minute)
	_, found, err = c.Load(ctx, 1)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Store(ctx, result))
	require.NoError(t, c.Evict(ctx, 1))
	_, found, _ = c.Load(ctx, 1)
	assert.False(t, found)
}
