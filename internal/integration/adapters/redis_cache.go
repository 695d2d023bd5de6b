// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/finpulse/backend/internal/application/adapter"
)

// redisCacheService implements the adapter.CacheService interface on Redis.
type redisCacheService struct {
	client *redis.Client
}

// NewRedisCacheService creates a new Redis-backed cache service.
func NewRedisCacheService(client *redis.Client) adapter.CacheService {
	return &redisCacheService{client: client}
}

// Get retrieves a cached value by key. A missing key is not an error.
func (s *redisCacheService) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return value, true, nil
}

// Set stores a value under key with the given TTL.
func (s *redisCacheService) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}

// Delete removes a key from the cache.
func (s *redisCacheService) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}
