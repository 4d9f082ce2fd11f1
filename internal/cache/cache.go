package cache

import (
	"context"
	"time"
)

// Cache holds JSON-serialized query results, keyed by string. The
// position catalog is the only current user; a miss is never an error.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (hit bool, err error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}
