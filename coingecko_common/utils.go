package coingecko_common

import (
	"github.com/coreyadam8/cryptotracker/config"
)

// GetApiBaseUrl returns the provider base URL, honoring the config override
func GetApiBaseUrl(cfg *config.Config) string {
	if cfg != nil && cfg.OverrideCoingeckoPublicURL != "" {
		return cfg.OverrideCoingeckoPublicURL
	}
	return COINGECKO_PUBLIC_URL
}

// NewHTTPClientFromConfig builds the provider client from the shared client settings
func NewHTTPClientFromConfig(cfg *config.Config, logPrefix string, handler IHttpStatusHandler) *HTTPClient {
	opts := DefaultClientOptions()
	opts.LogPrefix = logPrefix
	if cfg != nil {
		opts.ConnectionTimeout = cfg.CoingeckoClient.GetConnectionTimeout()
		opts.RequestTimeout = cfg.CoingeckoClient.GetRequestTimeout()
	}
	return NewHTTPClient(opts, handler)
}
