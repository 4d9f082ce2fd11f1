package cache

import (
	"context"
	"time"
)

// Noop satisfies Cache when no Redis is configured; every read is a
// miss and writes go nowhere.
type Noop struct{}

func (Noop) GetJSON(ctx context.Context, key string, dst any) (bool, error) { return false, nil }

func (Noop) SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error { return nil }

func (Noop) Del(ctx context.Context, keys ...string) error { return nil }
