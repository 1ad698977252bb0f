// Package cache stores rendered artifacts and resolved layouts by content key.
//
// Three backends implement [Cache]:
//
//   - [FileCache]: JSON entries on local disk, used by the CLI
//   - [RedisCache]: a shared Redis instance, used by the HTTP service
//   - [NullCache]: stores nothing, for --no-cache and tests
//
// Keys come from a [Keyer], which hashes everything that influences an
// entry: the figure document for layouts, the layout and output options for
// artifacts. Entries are therefore immutable and only ever expire.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiry. Implementations are safe for
// concurrent use.
type Cache interface {
	// Get returns the value for key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Entry lifetimes.
const (
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 30 * 24 * time.Hour
)
