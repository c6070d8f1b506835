package e2etest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/coreyadam8/cryptotracker/config"
)

// createTestConfig creates a test configuration and returns the path to the file
func createTestConfig(mockURL, port string) (string, error) {
	tempDir, err := os.MkdirTemp("", "cryptotracker-test")
	if err != nil {
		return "", err
	}

	configContent := fmt.Sprintf(`
coingecko:
  connection_timeout: 1s
  request_timeout: 2s

coingecko_markets:
  default_limit: 3
  ttl: 10m

coingecko_market_chart:
  default_days: 30
  interval: daily
  ttl: 5m

cache:
  go_cache:
    enabled: true
    default_expiration: 5m
    cleanup_interval: 0s
  cache_failures: true

server:
  port: "%s"

dashboard:
  title: "CryptoTracker Test"

# URL for API (mock)
override_coingecko_public_url: "%s"
`, port, mockURL)

	configPath := filepath.Join(tempDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		os.RemoveAll(tempDir)
		return "", err
	}

	return configPath, nil
}

// loadTestConfig creates and loads test configuration
func loadTestConfig(mockURL, port string) (*config.Config, string, error) {
	configPath, err := createTestConfig(mockURL, port)
	if err != nil {
		return nil, "", err
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		os.RemoveAll(filepath.Dir(configPath))
		return nil, "", err
	}

	return cfg, configPath, nil
}

// cleanupTestConfig removes the temporary directory with configuration
func cleanupTestConfig(configPath string) {
	os.RemoveAll(filepath.Dir(configPath))
}
