package config

import (
	"fmt"
	"time"
)

const (
	// MaxMarketsLimit is the provider's maximum per_page value
	MaxMarketsLimit = 250
)

// CoingeckoMarketsFetcher defines configuration for the top coins fetcher
type CoingeckoMarketsFetcher struct {
	DefaultLimit int           `yaml:"default_limit"` // Limit used when the caller passes 0
	Currency     string        `yaml:"currency"`      // vs_currency sent to the provider
	TTL          time.Duration `yaml:"ttl"`           // Memoization TTL per limit
}

// GetDefaultMarketsConfig returns default configuration for the top coins fetcher
func GetDefaultMarketsConfig() CoingeckoMarketsFetcher {
	return CoingeckoMarketsFetcher{
		DefaultLimit: 10,
		Currency:     "usd",
		TTL:          600 * time.Second,
	}
}

// Validate validates the CoingeckoMarketsFetcher configuration
func (c *CoingeckoMarketsFetcher) Validate() error {
	if c.DefaultLimit < 0 || c.DefaultLimit > MaxMarketsLimit {
		return fmt.Errorf("default_limit must be between 1 and %d, got %d", MaxMarketsLimit, c.DefaultLimit)
	}
	if c.TTL < 0 {
		return fmt.Errorf("ttl must not be negative")
	}
	return nil
}

func (c *CoingeckoMarketsFetcher) GetTTL() time.Duration {
	if c.TTL > 0 {
		return c.TTL
	}

	return 600 * time.Second
}

func (c *CoingeckoMarketsFetcher) GetDefaultLimit() int {
	if c.DefaultLimit > 0 {
		return c.DefaultLimit
	}
	return 10
}

func (c *CoingeckoMarketsFetcher) GetCurrency() string {
	if c.Currency != "" {
		return c.Currency
	}
	return "usd"
}
