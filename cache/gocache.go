package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// GoCache in-memory entry store backed by go-cache
type GoCache struct {
	cache *cache.Cache
}

// NewGoCache creates a new GoCache instance
// defaultExpiration: default expiration time for items
// cleanupInterval: interval for cleaning up expired items, 0 disables the janitor
func NewGoCache(defaultExpiration, cleanupInterval time.Duration) *GoCache {
	return &GoCache{
		cache: cache.New(defaultExpiration, cleanupInterval),
	}
}

// Get returns the entry stored under key
func (gc *GoCache) Get(key string) (*Entry, bool) {
	value, found := gc.cache.Get(key)
	if !found {
		return nil, false
	}

	entry, ok := value.(*Entry)
	if !ok {
		return nil, false
	}
	return entry, true
}

// Set stores the entry under key. go-cache expiration follows the entry TTL,
// so the optional janitor drops the same items the lazy check would.
func (gc *GoCache) Set(key string, entry *Entry) {
	gc.cache.Set(key, entry, entry.TTL)
}

// Clear removes all items from cache
func (gc *GoCache) Clear() {
	gc.cache.Flush()
}

// ItemCount returns the number of items in cache
func (gc *GoCache) ItemCount() int {
	return gc.cache.ItemCount()
}
