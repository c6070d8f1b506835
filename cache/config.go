package cache

import "time"

// Config represents cache configuration
type Config struct {
	// GoCache configuration
	GoCache GoCacheConfig `yaml:"go_cache"`

	// CacheFailures stores failed loads too, so a failing key is not
	// retried before its TTL runs out
	CacheFailures bool `yaml:"cache_failures"`
}

// GoCacheConfig configuration for in-memory go-cache
type GoCacheConfig struct {
	// DefaultExpiration is used when a caller passes a zero TTL
	DefaultExpiration time.Duration `yaml:"default_expiration"`

	// CleanupInterval interval for sweeping expired items.
	// Zero disables the sweeper; expiry is then checked on access only.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`

	// Enabled whether go-cache is enabled
	Enabled bool `yaml:"enabled"`
}

// DefaultCacheConfig returns default cache configuration
func DefaultCacheConfig() Config {
	return Config{
		GoCache: GoCacheConfig{
			DefaultExpiration: 5 * time.Minute,
			CleanupInterval:   0,
			Enabled:           true,
		},
		CacheFailures: true,
	}
}
