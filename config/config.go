package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/coreyadam8/cryptotracker/cache"
)

type Config struct {
	CoingeckoClient      CoingeckoClientConfig       `yaml:"coingecko"`
	CoingeckoMarkets     CoingeckoMarketsFetcher     `yaml:"coingecko_markets"`
	CoingeckoMarketChart CoingeckoMarketChartFetcher `yaml:"coingecko_market_chart"`
	Cache                cache.Config                `yaml:"cache"`
	Server               ServerConfig                `yaml:"server"`
	Dashboard            DashboardConfig             `yaml:"dashboard"`

	OverrideCoingeckoPublicURL string `yaml:"override_coingecko_public_url"`
}

// DefaultConfig returns a configuration with every section set to its defaults
func DefaultConfig() *Config {
	return &Config{
		CoingeckoClient:      GetDefaultCoingeckoClientConfig(),
		CoingeckoMarkets:     GetDefaultMarketsConfig(),
		CoingeckoMarketChart: GetDefaultMarketChartConfig(),
		Cache:                cache.DefaultCacheConfig(),
		Server:               GetDefaultServerConfig(),
		Dashboard:            GetDefaultDashboardConfig(),
	}
}

// LoadConfig reads the YAML file at path on top of DefaultConfig
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParseConfig(data)
}

// ParseConfig decodes YAML data on top of DefaultConfig and validates the result
func ParseConfig(data []byte) (*Config, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	if config.OverrideCoingeckoPublicURL != "" {
		log.Printf("Config: CoinGecko public URL overridden with %s", config.OverrideCoingeckoPublicURL)
	}

	return config, nil
}

// Validate checks every section of the configuration
func (c *Config) Validate() error {
	if err := c.CoingeckoClient.Validate(); err != nil {
		return fmt.Errorf("coingecko: %w", err)
	}
	if err := c.CoingeckoMarkets.Validate(); err != nil {
		return fmt.Errorf("coingecko_markets: %w", err)
	}
	if err := c.CoingeckoMarketChart.Validate(); err != nil {
		return fmt.Errorf("coingecko_market_chart: %w", err)
	}
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
