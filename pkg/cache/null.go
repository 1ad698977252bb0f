package cache

import (
	"context"
	"time"

	"github.com/matzehuels/framechart/pkg/observability"
)

// NullCache backs --no-cache. Every lookup misses, and the miss is still
// reported to the cache hooks so verbose runs show what would have been
// looked up.
type NullCache struct{}

// NewNullCache returns a cache that keeps nothing.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	observability.Cache().OnCacheMiss(ctx, keyType(key))
	return nil, false, nil
}

func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (NullCache) Delete(context.Context, string) error { return nil }

func (NullCache) Close() error { return nil }
