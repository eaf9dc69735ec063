// Package redis implements a kv Store over a Redis server.
package redis

import (
	"context"
	"errors"
	"os"
	"strconv"

	"github.com/go-redis/redis/v8"

	"fieldcore/internal/kv/core"
)

// Compile-time contract assertion.
var _ core.Store = (*Store)(nil)

// Store maps keys straight onto Redis string values with no TTL; collections
// live until explicitly removed, like every other driver.
type Store struct {
	c *redis.Client
}

// New wraps an existing client.
func New(c *redis.Client) *Store { return &Store{c: c} }

// OpenFromEnv constructs a Redis store from process environment.
//
//	FIELDCORE_KV_REDIS_ADDR (default localhost:6379)
//	FIELDCORE_KV_REDIS_PASSWORD (optional)
//	FIELDCORE_KV_REDIS_DB (optional, integer)
func OpenFromEnv() (*Store, error) {
	addr := os.Getenv("FIELDCORE_KV_REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	db := 0
	if raw := os.Getenv("FIELDCORE_KV_REDIS_DB"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
		db = parsed
	}
	return New(redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("FIELDCORE_KV_REDIS_PASSWORD"),
		DB:       db,
	})), nil
}

// Driver returns the kv driver identifier.
func (s *Store) Driver() core.Driver { return core.DriverRedis }

// Get reads the value for key; redis.Nil maps to an absent key.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.c.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// Set stores the value for key without expiry.
func (s *Store) Set(ctx context.Context, key, value string) error {
	return s.c.Set(ctx, key, value, 0).Err()
}

// Remove deletes the key; missing keys are a no-op.
func (s *Store) Remove(ctx context.Context, key string) error {
	return s.c.Del(ctx, key).Err()
}

// Close releases the underlying client.
func (s *Store) Close() error { return s.c.Close() }
