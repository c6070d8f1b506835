package coingecko_markets

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync/atomic"

	cg "github.com/coreyadam8/cryptotracker/coingecko_common"
	"github.com/coreyadam8/cryptotracker/config"
	"github.com/coreyadam8/cryptotracker/metrics"
)

const marketsOp = "coins/markets"

// APIClient defines interface for API operations
type APIClient interface {
	// FetchTopCoins fetches the first page of coins ordered by market cap desc
	FetchTopCoins(ctx context.Context, limit int) ([]CoinData, error)
	// Healthy reports whether at least one fetch succeeded
	Healthy() bool
}

// CoinGeckoClient implements APIClient for CoinGecko
type CoinGeckoClient struct {
	config          *config.Config
	httpClient      *cg.HTTPClient
	successfulFetch atomic.Bool // Flag indicating if at least one fetch was successful
}

// NewCoinGeckoClient creates a new CoinGecko API client
func NewCoinGeckoClient(cfg *config.Config) *CoinGeckoClient {
	metricsWriter := metrics.NewMetricsWriter(metrics.ServiceTopCoins)

	return &CoinGeckoClient{
		config:     cfg,
		httpClient: cg.NewHTTPClientFromConfig(cfg, "CoinGecko-Markets", metricsWriter),
	}
}

// Healthy checks if the API has had at least one successful fetch
func (c *CoinGeckoClient) Healthy() bool {
	return c.successfulFetch.Load()
}

// FetchTopCoins issues a single markets request for limit coins
func (c *CoinGeckoClient) FetchTopCoins(ctx context.Context, limit int) ([]CoinData, error) {
	request, err := NewMarketRequestBuilder(cg.GetApiBaseUrl(c.config)).
		WithPerPage(limit).
		WithCurrency(c.config.CoingeckoMarkets.GetCurrency()).
		WithUserAgent(c.config.CoingeckoClient.UserAgent).
		Build(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build markets request: %w", err)
	}

	body, duration, err := c.httpClient.ExecuteRequest(marketsOp, request)
	if err != nil {
		return nil, err
	}

	var coins []CoinData
	if err := json.Unmarshal(body, &coins); err != nil {
		log.Printf("CoinGecko-Markets: Error parsing JSON response: %v", err)
		return nil, cg.NewFetchError(marketsOp, 0, fmt.Errorf("invalid response body: %w", err))
	}

	log.Printf("CoinGecko-Markets: Fetched %d coins (limit %d) in %.2fs", len(coins), limit, duration.Seconds())

	c.successfulFetch.Store(true)

	return coins, nil
}
