package seedstore

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore connects to the Redis at REDIS_ADDR under a throwaway prefix.
func newTestStore(t *testing.T) *RedisSeedStore {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(context.Background()).Err())

	prefix := "test-" + uuid.NewString()
	t.Cleanup(func() {
		ctx := context.Background()
		keys, _ := client.Keys(ctx, prefix+":*").Result()
		if len(keys) > 0 {
			_ = client.Del(ctx, keys...).Err()
		}
	})

	store, err := NewRedisSeedStore(client, 60, prefix)
	require.NoError(t, err)
	return store
}

func TestNewRedisSeedStore(t *testing.T) {
	_, err := NewRedisSeedStore(nil, 60, "")
	assert.Error(t, err)

	client := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	defer client.Close()
	_, err = NewRedisSeedStore(client, 0, "")
	assert.Error(t, err)

	store, err := NewRedisSeedStore(client, 10, "")
	require.NoError(t, err)
	assert.Equal(t, defaultPrefix, store.prefix)
	assert.Equal(t, 10*time.Second, store.ttl)
}

func TestRedisSeedStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("Concurrent callers agree on the daily seed", func(t *testing.T) {
		var (
			mu    sync.Mutex
			next  int64
			seeds = make([]int64, 8)
			wg    sync.WaitGroup
		)
		newSeed := func() int64 {
			mu.Lock()
			defer mu.Unlock()
			next++
			return next
		}

		for n := range seeds {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				seed, err := store.DailySeed(ctx, "2026-10-15", newSeed)
				assert.NoError(t, err)
				seeds[n] = seed
			}(n)
		}
		wg.Wait()

		for _, seed := range seeds {
			assert.Equal(t, seeds[0], seed)
		}
		assert.Equal(t, int64(1), next)
	})

	t.Run("Leaderboard keeps the longest diameter", func(t *testing.T) {
		board := fmt.Sprintf("%dx%d", 5, 5)
		require.NoError(t, store.RecordDiameter(ctx, board, 1, 10))
		require.NoError(t, store.RecordDiameter(ctx, board, 2, 14))
		require.NoError(t, store.RecordDiameter(ctx, board, 1, 8))
		require.NoError(t, store.RecordDiameter(ctx, board, 3, 12))

		scores, err := store.Longest(ctx, board, 2)
		require.NoError(t, err)
		require.Len(t, scores, 2)
		assert.Equal(t, int64(2), scores[0].Seed)
		assert.Equal(t, 14, scores[0].Diameter)
		assert.Equal(t, int64(3), scores[1].Seed)

		all, err := store.Longest(ctx, board, 10)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, 10, all[2].Diameter)
	})
}
