package cache

import (
	"context"
	"time"
)

// Store is a process-wide keyed byte store with TTL eviction. Controllers
// receive it as a collaborator so tests can swap the backend and control time.
type Store interface {
	// Get returns the cached value, or (nil, nil) on a miss.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Clear(ctx context.Context, key string) error
	ClearPrefix(ctx context.Context, prefix string) error
}
