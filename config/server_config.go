package config

import "fmt"

// ServerConfig configures the inbound HTTP server
type ServerConfig struct {
	Port string `yaml:"port"`

	// RateLimitPerMinute throttles inbound requests; 0 disables throttling
	RateLimitPerMinute int `yaml:"rate_limit_per_minute"`
	Burst              int `yaml:"burst"`
}

func GetDefaultServerConfig() ServerConfig {
	return ServerConfig{
		Port: "8080",
	}
}

func (c *ServerConfig) Validate() error {
	if c.RateLimitPerMinute < 0 {
		return fmt.Errorf("rate_limit_per_minute must not be negative")
	}
	if c.Burst < 0 {
		return fmt.Errorf("burst must not be negative")
	}
	return nil
}

// DashboardConfig holds presentation settings
type DashboardConfig struct {
	Title string `yaml:"title"`
}

func GetDefaultDashboardConfig() DashboardConfig {
	return DashboardConfig{
		Title: "CryptoTracker Pro",
	}
}

func (c *DashboardConfig) GetTitle() string {
	if c.Title != "" {
		return c.Title
	}
	return "CryptoTracker Pro"
}

// GetBurst returns the throttle burst, one second worth of requests by default
func (c *ServerConfig) GetBurst() int {
	if c.Burst > 0 {
		return c.Burst
	}
	if burst := c.RateLimitPerMinute / 60; burst > 1 {
		return burst
	}
	return 1
}
