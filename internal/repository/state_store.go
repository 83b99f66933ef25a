package repository

import (
	"context"
	"time"
)

// StateStore abstracts short-lived key-value state such as revoked token
// IDs and rate-limit counters. Implementations: Redis (multi-instance) or
// in-memory (single instance / tests).
type StateStore interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	// Incr increments the counter at key and returns the new value. The TTL
	// is applied when the counter is created.
	Incr(ctx context.Context, key string, ttl time.Duration) (int64, error)
}
