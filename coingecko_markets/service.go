package coingecko_markets

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/coreyadam8/cryptotracker/cache"
	cg "github.com/coreyadam8/cryptotracker/coingecko_common"
	cfg "github.com/coreyadam8/cryptotracker/config"
	"github.com/coreyadam8/cryptotracker/interfaces"
	"github.com/coreyadam8/cryptotracker/metrics"
)

const (
	// Cache key prefix for top coins data
	TOP_COINS_CACHE_PREFIX = "top_coins"
)

// Service provides the top coins list with TTL memoization
type Service struct {
	cache         cache.Cache
	config        *cfg.Config
	metricsWriter *metrics.MetricsWriter
	apiClient     APIClient
}

// NewService creates a new top coins service with the given cache and config
func NewService(cache cache.Cache, config *cfg.Config) *Service {
	return &Service{
		cache:         cache,
		config:        config,
		metricsWriter: metrics.NewMetricsWriter(metrics.ServiceTopCoins),
		apiClient:     NewCoinGeckoClient(config),
	}
}

// Start implements core.Interface
func (s *Service) Start(ctx context.Context) error {
	if s.cache == nil {
		return fmt.Errorf("cache dependency not provided")
	}
	return nil
}

// Stop implements core.Interface
func (s *Service) Stop() {}

// Healthy checks if the service is operational
func (s *Service) Healthy() bool {
	if s.apiClient != nil {
		return s.apiClient.Healthy()
	}
	return false
}

// TopCoins returns at most limit coins ranked by market cap, memoized per limit.
// A zero limit selects the configured default.
func (s *Service) TopCoins(ctx context.Context, limit int) ([]interfaces.CoinSummary, interfaces.CacheStatus, error) {
	if limit == 0 {
		limit = s.config.CoingeckoMarkets.GetDefaultLimit()
	}
	if limit < 0 || limit > cfg.MaxMarketsLimit {
		return nil, "", cg.InvalidParams("limit must be between 1 and %d, got %d", cfg.MaxMarketsLimit, limit)
	}

	cacheKey := s.createCacheKey(limit)

	// The fetch is shared by every caller waiting on this key, so it must not
	// be cut short by the first caller going away.
	fetchCtx := context.WithoutCancel(ctx)
	data, cacheStatus, err := s.cache.GetOrLoad(cacheKey, s.config.CoingeckoMarkets.GetTTL(), func() ([]byte, error) {
		log.Printf("Cache miss for %s, fetching from API", cacheKey)
		coins, err := s.apiClient.FetchTopCoins(fetchCtx, limit)
		if err != nil {
			return nil, err
		}
		return json.Marshal(toSummaries(coins, limit))
	})
	s.metricsWriter.RecordCacheLookup(cacheStatus.String())

	if err != nil {
		log.Printf("Failed to fetch top coins (limit %d, cache %s): %v", limit, cacheStatus, err)
		return nil, cacheStatus, fmt.Errorf("failed to fetch top coins: %w", err)
	}

	var coins []interfaces.CoinSummary
	if err := json.Unmarshal(data, &coins); err != nil {
		return nil, cacheStatus, fmt.Errorf("failed to decode cached top coins: %w", err)
	}

	return coins, cacheStatus, nil
}

// createCacheKey creates a cache key from the resolved arguments
func (s *Service) createCacheKey(limit int) string {
	return fmt.Sprintf("%s:%s:limit:%d", TOP_COINS_CACHE_PREFIX, s.config.CoingeckoMarkets.GetCurrency(), limit)
}
