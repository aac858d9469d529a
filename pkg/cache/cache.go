// Package cache stores raw bytes fetched from remote alphabet catalogs.
//
// Fetching a catalog over the network is the only slow step in building a
// puzzle, and catalogs rarely change. [Cache] lets the network loader keep
// the fetched bytes between runs. Three backends are provided:
//
//   - [FileCache]: one JSON file per key under a directory (CLI default)
//   - [RedisCache]: a shared Redis instance, for many generators on many hosts
//   - [NullCache]: caching disabled
//
// Keys are built by [Keyer] so that every backend sees the same key space.
package cache

import (
	"context"
	"time"
)

// TTLAlphabet is how long a fetched alphabet catalog stays fresh.
const TTLAlphabet = 24 * time.Hour

// Cache is a byte store with per-entry expiration.
//
// Get reports a miss as (nil, false, nil); an error means the backend itself
// failed. A ttl of zero in Set means the entry never expires.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Keyer builds cache keys.
type Keyer interface {
	// AlphabetKey returns the key for catalog bytes loaded from source/name.
	AlphabetKey(source, name string) string
}

// DefaultKeyer hashes key components so that URLs of any length map to
// fixed-size keys.
type DefaultKeyer struct {
	prefix string
}

// NewDefaultKeyer returns a keyer whose keys start with prefix. An empty
// prefix is valid.
func NewDefaultKeyer(prefix string) *DefaultKeyer {
	return &DefaultKeyer{prefix: prefix}
}

// AlphabetKey implements Keyer.
func (k *DefaultKeyer) AlphabetKey(source, name string) string {
	return k.prefix + hashKey("alphabet", source, name)
}

var _ Keyer = (*DefaultKeyer)(nil)
