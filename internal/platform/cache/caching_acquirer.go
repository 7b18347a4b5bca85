// Package cache provides caching implementations for acquirer interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"stock_analyzer/internal/feature/marketdata/domain/entity"
)

// SnapshotAcquirer is the slice of the acquisition usecase this decorator
// wraps.
type SnapshotAcquirer interface {
	GetStockData(ctx context.Context, symbol, period string) (*entity.Snapshot, error)
}

// CachingSnapshotAcquirer decorates a SnapshotAcquirer with short-lived
// Redis caching, transparently adding caching without modifying the
// underlying pipeline. Snapshots are ephemeral by design, so the TTL
// stays in the minutes range.
type CachingSnapshotAcquirer struct {
	inner     SnapshotAcquirer
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingSnapshotAcquirer decorates an acquirer with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses
// "snapshots". A nil Redis client disables caching entirely.
func NewCachingSnapshotAcquirer(rdb *redis.Client, ttl time.Duration, inner SnapshotAcquirer, namespace string) *CachingSnapshotAcquirer {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "snapshots"
	}
	return &CachingSnapshotAcquirer{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// GetStockData checks the cache first, then falls back to the pipeline.
// Cache failures are best effort: a corrupted entry is deleted and the
// pipeline result is returned.
func (c *CachingSnapshotAcquirer) GetStockData(ctx context.Context, symbol, period string) (*entity.Snapshot, error) {
	if c.rdb == nil {
		return c.inner.GetStockData(ctx, symbol, period)
	}

	key := c.cacheKey(symbol, period)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var snap entity.Snapshot
		if err := json.Unmarshal(b, &snap); err == nil {
			return &snap, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Run the pipeline
	snap, err := c.inner.GetStockData(ctx, symbol, period)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(snap); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return snap, nil
}

// cacheKey generates a cache key for a specific query.
func (c *CachingSnapshotAcquirer) cacheKey(symbol, period string) string {
	return fmt.Sprintf("%s:%s:%s", c.namespace, safe(strings.ToUpper(strings.TrimSpace(symbol))), safe(period))
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
