package cache

import (
	"time"

	"github.com/coreyadam8/cryptotracker/interfaces"
)

// LoaderFunc loads the value for a key that is missing from the cache or expired.
// The returned error is memoized together with the value when failure caching is on.
type LoaderFunc func() ([]byte, error)

// Cache interface for the TTL memoization layer
type Cache interface {
	// GetOrLoad returns the live entry stored under key, or runs loader,
	// stores its outcome with the given ttl and returns it.
	//
	// Parameters:
	// - key: full argument tuple of the memoized operation
	// - ttl: time to live for the stored outcome; if 0, uses cache's default expiration
	// - loader: function producing the value on a miss
	//
	// Returns:
	// - []byte: stored or loaded value
	// - interfaces.CacheStatus: hit when the loader was not called
	// - error: loader error, live or replayed from the cache
	GetOrLoad(key string, ttl time.Duration, loader LoaderFunc) ([]byte, interfaces.CacheStatus, error)
}

// Entry is a single memoized outcome
type Entry struct {
	Value      []byte
	Err        error
	InsertedAt time.Time
	TTL        time.Duration
}

// Expired reports whether the entry is stale at now.
// An entry is live for exactly TTL after insertion.
func (e *Entry) Expired(now time.Time) bool {
	return now.Sub(e.InsertedAt) > e.TTL
}
