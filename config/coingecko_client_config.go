package config

import (
	"fmt"
	"time"
)

// CoingeckoClientConfig configures the outbound HTTP client shared by both fetchers
type CoingeckoClientConfig struct {
	// ConnectionTimeout bounds establishing the TCP/TLS connection
	ConnectionTimeout time.Duration `yaml:"connection_timeout"`

	// RequestTimeout bounds the whole request including reading the body
	RequestTimeout time.Duration `yaml:"request_timeout"`

	UserAgent string `yaml:"user_agent"`
}

// GetDefaultCoingeckoClientConfig returns default configuration for the provider client
func GetDefaultCoingeckoClientConfig() CoingeckoClientConfig {
	return CoingeckoClientConfig{
		ConnectionTimeout: 5 * time.Second,
		RequestTimeout:    10 * time.Second,
		UserAgent:         "Mozilla/5.0 CryptoTracker",
	}
}

func (c *CoingeckoClientConfig) Validate() error {
	if c.ConnectionTimeout < 0 {
		return fmt.Errorf("connection_timeout must not be negative")
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout must not be negative")
	}
	return nil
}

// GetRequestTimeout returns the configured request timeout, never zero
func (c *CoingeckoClientConfig) GetRequestTimeout() time.Duration {
	if c.RequestTimeout > 0 {
		return c.RequestTimeout
	}
	return 10 * time.Second
}

// GetConnectionTimeout returns the configured connection timeout, never zero
func (c *CoingeckoClientConfig) GetConnectionTimeout() time.Duration {
	if c.ConnectionTimeout > 0 {
		return c.ConnectionTimeout
	}
	return 5 * time.Second
}
