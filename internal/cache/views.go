// Package cache implements the Redis-backed view cache.  Rendered views are
// stored under a key derived from their path; mutations mark affected views
// stale by deleting that key.  Invalidation is best-effort: a Redis failure
// is logged and never fails the mutation that triggered it.
package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lemonteaau/the-wild-oasis-website/internal/config"
)

// ViewCache caches view bodies and invalidates them by path.  A ViewCache
// built without a Redis client is a no-op on every method, mirroring how
// the rest of the service degrades when Redis is unavailable.
type ViewCache struct {
	rdb     *redis.Client
	ttl     time.Duration
	prefix  string
	maxBody int
}

func NewViewCache(rdb *redis.Client, cfg config.ViewCacheConfig) *ViewCache {
	if !cfg.Enabled {
		rdb = nil
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "view"
	}
	return &ViewCache{rdb: rdb, ttl: ttl, prefix: prefix, maxBody: cfg.MaxBodyBytes}
}

// Enabled reports whether cache reads and writes will do anything.
func (v *ViewCache) Enabled() bool { return v != nil && v.rdb != nil }

func (v *ViewCache) key(path string) string { return v.prefix + ":" + path }

// Get returns the cached body for a view path, if present.
func (v *ViewCache) Get(ctx context.Context, path string) ([]byte, bool) {
	if !v.Enabled() {
		return nil, false
	}
	bs, err := v.rdb.Get(ctx, v.key(path)).Bytes()
	if err != nil || len(bs) == 0 {
		return nil, false
	}
	return bs, true
}

// Set stores a rendered view body.  Oversized bodies are skipped rather
// than truncated.
func (v *ViewCache) Set(ctx context.Context, path string, body []byte) {
	if !v.Enabled() || len(body) == 0 {
		return
	}
	if v.maxBody > 0 && len(body) > v.maxBody {
		return
	}
	if err := v.rdb.Set(ctx, v.key(path), body, v.ttl).Err(); err != nil {
		log.Printf("view cache: set %s failed: %v", path, err)
	}
}

// Invalidate marks the view for a path stale by deleting its entry.
// Deleting an absent key is a no-op, so repeated invalidation is safe.
func (v *ViewCache) Invalidate(ctx context.Context, path string) {
	if !v.Enabled() {
		return
	}
	if err := v.rdb.Del(ctx, v.key(path)).Err(); err != nil {
		log.Printf("view cache: invalidate %s failed: %v", path, err)
	}
}
