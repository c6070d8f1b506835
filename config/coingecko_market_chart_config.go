package config

import (
	"fmt"
	"time"
)

// CoingeckoMarketChartFetcher defines configuration for the historical series fetcher
type CoingeckoMarketChartFetcher struct {
	// DefaultDays is the window used when the caller passes 0
	DefaultDays int `yaml:"default_days"`

	// Currency is the vs_currency sent to the provider
	Currency string `yaml:"currency"`

	// Interval is the provider granularity ("daily")
	Interval string `yaml:"interval"`

	// TTL is the memoization TTL per (coin, days)
	TTL time.Duration `yaml:"ttl"`
}

// GetDefaultMarketChartConfig returns default configuration for market chart service
func GetDefaultMarketChartConfig() CoingeckoMarketChartFetcher {
	return CoingeckoMarketChartFetcher{
		DefaultDays: 30,
		Currency:    "usd",
		Interval:    "daily",
		TTL:         300 * time.Second,
	}
}

func (c *CoingeckoMarketChartFetcher) Validate() error {
	if c.DefaultDays < 0 {
		return fmt.Errorf("default_days must not be negative, got %d", c.DefaultDays)
	}
	switch c.Interval {
	case "", "5m", "hourly", "daily":
	default:
		return fmt.Errorf("invalid interval %q, must be one of: 5m, hourly, daily", c.Interval)
	}
	if c.TTL < 0 {
		return fmt.Errorf("ttl must not be negative")
	}
	return nil
}

func (c *CoingeckoMarketChartFetcher) GetTTL() time.Duration {
	if c.TTL > 0 {
		return c.TTL
	}
	return 300 * time.Second
}

func (c *CoingeckoMarketChartFetcher) GetDefaultDays() int {
	if c.DefaultDays > 0 {
		return c.DefaultDays
	}
	return 30
}

func (c *CoingeckoMarketChartFetcher) GetCurrency() string {
	if c.Currency != "" {
		return c.Currency
	}
	return "usd"
}
