package cache

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/singleflight"

	"github.com/coreyadam8/cryptotracker/interfaces"
)

// Service implements Cache interface on top of go-cache.
// It is safe for concurrent use; loads are serialized per key.
type Service struct {
	goCache *GoCache
	config  Config
	clock   clockwork.Clock
	group   singleflight.Group

	hits   atomic.Int64
	misses atomic.Int64
}

// NewService creates a new cache service with the given configuration
func NewService(config Config) *Service {
	return NewServiceWithClock(config, clockwork.NewRealClock())
}

// NewServiceWithClock creates a cache service that reads time from clock
func NewServiceWithClock(config Config, clock clockwork.Clock) *Service {
	defaultExpiration := config.GoCache.DefaultExpiration
	if defaultExpiration <= 0 {
		defaultExpiration = 5 * time.Minute
	}

	return &Service{
		goCache: NewGoCache(defaultExpiration, config.GoCache.CleanupInterval),
		config:  config,
		clock:   clock,
	}
}

// Start implements core.Interface
func (s *Service) Start(ctx context.Context) error {
	if s.goCache == nil {
		return fmt.Errorf("cache service not properly initialized")
	}
	return nil
}

// Stop implements core.Interface and drops every memoized entry
func (s *Service) Stop() {
	s.Clear()
}

type loadResult struct {
	entry  *Entry
	cached bool
}

// GetOrLoad retrieves the value under key from local cache or loads it using LoaderFunc
func (s *Service) GetOrLoad(key string, ttl time.Duration, loader LoaderFunc) ([]byte, interfaces.CacheStatus, error) {
	if entry, ok := s.lookup(key); ok {
		s.hits.Add(1)
		return entry.Value, interfaces.CacheStatusHit, wrapLoadError(entry.Err)
	}

	v, _, _ := s.group.Do(key, func() (interface{}, error) {
		// Another caller may have stored the entry while this one waited
		if entry, ok := s.lookup(key); ok {
			return loadResult{entry: entry, cached: true}, nil
		}
		return loadResult{entry: s.loadAndStore(key, ttl, loader)}, nil
	})

	result := v.(loadResult)
	status := interfaces.CacheStatusMiss
	if result.cached {
		s.hits.Add(1)
		status = interfaces.CacheStatusHit
	} else {
		s.misses.Add(1)
	}

	return result.entry.Value, status, wrapLoadError(result.entry.Err)
}

// lookup returns the live entry under key. Stale entries are left in place
// and overwritten by the next store.
func (s *Service) lookup(key string) (*Entry, bool) {
	if !s.config.GoCache.Enabled {
		return nil, false
	}

	entry, found := s.goCache.Get(key)
	if !found {
		return nil, false
	}
	if entry.Expired(s.clock.Now()) {
		return nil, false
	}
	return entry, true
}

// loadAndStore runs the loader and stores its outcome
func (s *Service) loadAndStore(key string, ttl time.Duration, loader LoaderFunc) *Entry {
	value, err := loader()

	entry := &Entry{
		Value:      value,
		Err:        err,
		InsertedAt: s.clock.Now(),
		TTL:        s.resolveTTL(ttl),
	}

	if err != nil {
		log.Printf("Cache: load failed for %s: %v", key, err)
		if !s.config.CacheFailures {
			return entry
		}
	}

	if s.config.GoCache.Enabled {
		s.goCache.Set(key, entry)
	}
	return entry
}

func (s *Service) resolveTTL(ttl time.Duration) time.Duration {
	if ttl > 0 {
		return ttl
	}
	if s.config.GoCache.DefaultExpiration > 0 {
		return s.config.GoCache.DefaultExpiration
	}
	return 5 * time.Minute
}

func wrapLoadError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("failed to load data: %w", err)
}

// Stats returns statistics about the cache service
func (s *Service) Stats() ServiceStats {
	return ServiceStats{
		GoCacheItems: s.goCache.ItemCount(),
		Enabled:      s.config.GoCache.Enabled,
		Hits:         s.hits.Load(),
		Misses:       s.misses.Load(),
	}
}

// ServiceStats represents cache service statistics
type ServiceStats struct {
	GoCacheItems int   // Number of items in go-cache, stale ones included
	Enabled      bool  // Whether go-cache is enabled
	Hits         int64 // Calls answered without running the loader
	Misses       int64 // Calls that ran the loader
}

// Clear removes all items from cache
func (s *Service) Clear() {
	if s.goCache != nil {
		s.goCache.Clear()
	}
}
