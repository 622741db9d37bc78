// Package cache stores the latest simulation result of each wave, in redis
// when configured and in process memory otherwise.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"lane_wars/domain"
)

const keyPrefix = "wave:result:"

func resultKey(waveID int64) string {
	return fmt.Sprintf("%s%d", keyPrefix, waveID)
}

type redisResultCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisResultCache(client *redis.Client, ttl time.Duration) domain.ResultCache {
	return &redisResultCache{client: client, ttl: ttl}
}

func (c *redisResultCache) Store(ctx context.Context, result domain.SimulationResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, resultKey(result.WaveID), payload, c.ttl).Err()
}

func (c *redisResultCache) Load(ctx context.Context, waveID int64) (domain.SimulationResult, bool, error) {
	payload, err := c.client.Get(ctx, resultKey(waveID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.SimulationResult{}, false, nil
	}
	if err != nil {
		return domain.SimulationResult{}, false, err
	}

	var result domain.SimulationResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return domain.SimulationResult{}, false, err
	}
	return result, true, nil
}

func (c *redisResultCache) Evict(ctx context.Context, waveID int64) error {
	return c.client.Del(ctx, resultKey(waveID)).Err()
}

type memoryEntry struct {
	result  domain.SimulationResult
	expires time.Time
}

type memoryResultCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[int64]memoryEntry
	now     func() time.Time
}

// NewMemoryResultCache is used when no redis endpoint is configured.
func NewMemoryResultCache(ttl time.Duration) domain.ResultCache {
	return &memoryResultCache{
		ttl:     ttl,
		entries: make(map[int64]memoryEntry),
		now:     time.Now,
	}
}

func (c *memoryResultCache) Store(_ context.Context, result domain.SimulationResult) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[result.WaveID] = memoryEntry{result: result, expires: c.now().Add(c.ttl)}
	return nil
}

func (c *memoryResultCache) Load(_ context.Context, waveID int64) (domain.SimulationResult, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[waveID]
	c.mu.RUnlock()

	if !ok {
		return domain.SimulationResult{}, false, nil
	}
	if c.ttl > 0 && c.now().After(entry.expires) {
		c.mu.Lock()
		delete(c.entries, waveID)
		c.mu.Unlock()
		return domain.SimulationResult{}, false, nil
	}
	return entry.result, true, nil
}

func (c *memoryResultCache) Evict(_ context.Context, waveID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, waveID)
	return nil
}
