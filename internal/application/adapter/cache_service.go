// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CacheService defines the interface for short-lived response caching.
// A cache miss is reported by found == false, not by an error.
type CacheService interface {
	// Get retrieves a cached value by key.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)

	// Set stores a value under key with the given TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key from the cache.
	Delete(ctx context.Context, key string) error
}

// DashboardCacheKey returns the cache key for a user's dashboard payload.
func DashboardCacheKey(userID uuid.UUID) string {
	return "dashboard:" + userID.String()
}

// LatestScoreCacheKey returns the cache key for a user's latest health score.
func LatestScoreCacheKey(userID uuid.UUID) string {
	return "health:latest:" + userID.String()
}
