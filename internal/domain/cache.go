package domain

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss reports that a key is absent. Adapters return it unwrapped.
var ErrCacheMiss = errors.New("cache: key not found")

// Cache is the key/value port used for report caching and health probes
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	// Set stores value under key; expiration 0 keeps it until evicted.
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	// Delete is a no-op for absent keys.
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}
