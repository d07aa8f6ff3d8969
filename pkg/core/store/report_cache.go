package store

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ReportCache caches serialized underwriting reports keyed by deal id, so
// repeated report requests for an unchanged deal skip recomputation and
// persistence round-trips.
type ReportCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string) error
	Invalidate(ctx context.Context, key string) error
}

// RedisReportCache backs ReportCache with redis.
type RedisReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisReportCache connects to redis at addr. TTL bounds staleness when
// invalidation is missed.
func NewRedisReportCache(addr string, ttl time.Duration) *RedisReportCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisReportCache{client: rdb, ttl: ttl}
}

func (r *RedisReportCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (r *RedisReportCache) Set(ctx context.Context, key string, value string) error {
	return r.client.Set(ctx, key, value, r.ttl).Err()
}

func (r *RedisReportCache) Invalidate(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// MemoryReportCache is the in-process implementation used in tests and when
// no redis address is configured.
type MemoryReportCache struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryReportCache creates an empty in-memory cache.
func NewMemoryReportCache() *MemoryReportCache {
	return &MemoryReportCache{data: make(map[string]string)}
}

func (m *MemoryReportCache) Get(ctx context.Context, key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.data[key]
	return val, ok
}

func (m *MemoryReportCache) Set(ctx context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MemoryReportCache) Invalidate(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
