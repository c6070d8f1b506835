package coingecko_market_chart

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/coreyadam8/cryptotracker/cache"
	"github.com/coreyadam8/cryptotracker/config"
	"github.com/coreyadam8/cryptotracker/interfaces"
	"github.com/coreyadam8/cryptotracker/metrics"
)

const (
	// Cache key prefix for market chart data
	MARKET_CHART_CACHE_PREFIX = "market_chart"
)

// Service provides historical price series with caching
type Service struct {
	cache         cache.Cache
	config        *config.Config
	metricsWriter *metrics.MetricsWriter
	apiClient     IAPIClient
}

// NewService creates a new market chart service with the given cache and config
func NewService(cache cache.Cache, config *config.Config) *Service {
	return &Service{
		cache:         cache,
		config:        config,
		metricsWriter: metrics.NewMetricsWriter(metrics.ServiceMarketChart),
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

// HistoricalSeries returns the daily price series of coinID over the last days days.
// A zero days selects the configured default.
func (s *Service) HistoricalSeries(ctx context.Context, coinID string, days int) (interfaces.PriceSeries, interfaces.CacheStatus, error) {
	if days == 0 {
		days = s.config.CoingeckoMarketChart.GetDefaultDays()
	}

	params := MarketChartParams{
		ID:       coinID,
		Currency: s.config.CoingeckoMarketChart.GetCurrency(),
		Days:     days,
		Interval: s.config.CoingeckoMarketChart.Interval,
	}
	if err := params.Validate(); err != nil {
		return interfaces.PriceSeries{}, "", err
	}

	cacheKey := s.createCacheKey(params)

	fetchCtx := context.WithoutCancel(ctx)
	data, cacheStatus, err := s.cache.GetOrLoad(cacheKey, s.config.CoingeckoMarketChart.GetTTL(), func() ([]byte, error) {
		log.Printf("Cache miss for market chart %s, fetching from API", params)
		chart, err := s.apiClient.FetchMarketChart(fetchCtx, params)
		if err != nil {
			return nil, err
		}
		return json.Marshal(chart.ToPriceSeries(params.ID, params.Days))
	})
	s.metricsWriter.RecordCacheLookup(cacheStatus.String())

	if err != nil {
		log.Printf("Failed to fetch market chart %s (cache %s): %v", params, cacheStatus, err)
		return interfaces.PriceSeries{}, cacheStatus, fmt.Errorf("failed to fetch market chart data: %w", err)
	}

	var series interfaces.PriceSeries
	if err := json.Unmarshal(data, &series); err != nil {
		return interfaces.PriceSeries{}, cacheStatus, fmt.Errorf("failed to decode cached market chart: %w", err)
	}

	return series, cacheStatus, nil
}

// createCacheKey creates a cache key based on request parameters
func (s *Service) createCacheKey(params MarketChartParams) string {
	baseKey := fmt.Sprintf("%s:%s:%s:days:%d", MARKET_CHART_CACHE_PREFIX, params.ID, params.Currency, params.Days)

	if params.Interval != "" {
		baseKey += fmt.Sprintf(":interval:%s", params.Interval)
	}

	return baseKey
}
