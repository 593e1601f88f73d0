package config

import (
	"os"
	"strconv"
	"time"
)

// ViewCacheConfig defines settings for the Redis-backed view cache.  When
// Enabled is false or no Redis client is configured, caching is disabled and
// view invalidation becomes a no-op.  TTL bounds how stale a cached view may
// get even when no mutation touches it.  Prefix namespaces the cache keys so
// several deployments can share one Redis instance.
type ViewCacheConfig struct {
	Enabled      bool
	TTL          time.Duration
	Prefix       string
	MaxBodyBytes int
}

// LoadViewCacheConfig reads environment variables to build a ViewCacheConfig.
// Defaults are used when variables are not set.
func LoadViewCacheConfig() ViewCacheConfig {
	return ViewCacheConfig{
		Enabled:      getenv("VIEW_CACHE_ENABLED", "true") == "true",
		TTL:          parseDur(getenv("VIEW_CACHE_TTL", "5m")),
		Prefix:       getenv("VIEW_CACHE_PREFIX", "view"),
		MaxBodyBytes: atoi(getenv("VIEW_CACHE_MAX_BODY_BYTES", "1048576")),
	}
}

// Shared env parsing helpers, also used by ratelimit.go and db.go.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}

func parseDur(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return time.Second
	}
	return d
}
