package seedstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const (
	defaultPrefix = "vinom-maze"
	dailyKeyFmt   = "%s:daily:%s"
	boardKeyFmt   = "%s:longest:%s"
)

// RedisSeedStore keeps daily seeds and diameter leaderboards in Redis.
type RedisSeedStore struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
	prefix string
}

var _ i.SeedStore = &RedisSeedStore{}

// NewRedisSeedStore initializes a RedisSeedStore; daily seeds expire after ttlSeconds.
func NewRedisSeedStore(client *redis.Client, ttlSeconds int, prefix string) (*RedisSeedStore, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	if ttlSeconds <= 0 {
		return nil, fmt.Errorf("invalid daily seed ttl: %d", ttlSeconds)
	}
	if prefix == "" {
		prefix = defaultPrefix
	}

	store := &RedisSeedStore{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
		prefix: prefix,
	}
	pool := goredis.NewPool(client)
	store.locker = redsync.New(pool)
	return store, nil
}

// DailySeed returns the seed stored for day, creating it under a distributed lock if missing.
func (s *RedisSeedStore) DailySeed(ctx context.Context, day string, newSeed func() int64) (int64, error) {
	key := fmt.Sprintf(dailyKeyFmt, s.prefix, day)

	seed, err := s.client.Get(ctx, key).Int64()
	if err == nil {
		return seed, nil
	}
	if !errors.Is(err, redis.Nil) {
		return 0, err
	}

	mutex := s.locker.NewMutex(key + ":lock")
	if err := mutex.LockContext(ctx); err != nil {
		return 0, err
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	// Another instance may have stored the seed while we waited for the lock.
	seed, err = s.client.Get(ctx, key).Int64()
	if err == nil {
		return seed, nil
	}
	if !errors.Is(err, redis.Nil) {
		return 0, err
	}

	seed = newSeed()
	if err := s.client.Set(ctx, key, seed, s.ttl).Err(); err != nil {
		return 0, err
	}
	return seed, nil
}

// RecordDiameter adds seed to the board, keeping the larger of its old and new diameter.
func (s *RedisSeedStore) RecordDiameter(ctx context.Context, board string, seed int64, diameter int) error {
	member := strconv.FormatInt(seed, 10)
	return s.client.ZAddGT(ctx, s.boardKey(board), redis.Z{Score: float64(diameter), Member: member}).Err()
}

// Longest returns up to limit seeds from board with the longest diameters first.
func (s *RedisSeedStore) Longest(ctx context.Context, board string, limit int64) ([]i.SeedScore, error) {
	entries, err := s.client.ZRevRangeWithScores(ctx, s.boardKey(board), 0, limit-1).Result()
	if err != nil {
		return nil, err
	}

	scores := make([]i.SeedScore, 0, len(entries))
	for _, e := range entries {
		member, ok := e.Member.(string)
		if !ok {
			continue
		}
		seed, err := strconv.ParseInt(member, 10, 64)
		if err != nil {
			continue
		}
		scores = append(scores, i.SeedScore{Seed: seed, Diameter: int(e.Score)})
	}
	return scores, nil
}

func (s *RedisSeedStore) boardKey(board string) string {
	return fmt.Sprintf(boardKeyFmt, s.prefix, board)
}
