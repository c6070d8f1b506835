package coingecko_market_chart

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

const marketChartOp = "coins/market_chart"

type IAPIClient interface {
	FetchMarketChart(ctx context.Context, params MarketChartParams) (*MarketChartResponse, error)
	Healthy() bool
}

type CoinGeckoClient struct {
	config          *config.Config
	httpClient      *cg.HTTPClient
	successfulFetch atomic.Bool
}

func NewCoinGeckoClient(cfg *config.Config) *CoinGeckoClient {
	metricsWriter := metrics.NewMetricsWriter(metrics.ServiceMarketChart)

	return &CoinGeckoClient{
		config:     cfg,
		httpClient: cg.NewHTTPClientFromConfig(cfg, "CoinGecko-MarketChart", metricsWriter),
	}
}

func (c *CoinGeckoClient) Healthy() bool {
	return c.successfulFetch.Load()
}

func (c *CoinGeckoClient) FetchMarketChart(ctx context.Context, params MarketChartParams) (*MarketChartResponse, error) {
	if params.ID == "" {
		return nil, cg.InvalidParams("coin ID is required")
	}

	request, err := NewMarketChartRequestBuilder(cg.GetApiBaseUrl(c.config), params.ID).
		WithDays(params.Days).
		WithInterval(params.Interval).
		WithCurrency(params.Currency).
		WithUserAgent(c.config.CoingeckoClient.UserAgent).
		Build(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build market chart request: %w", err)
	}

	body, duration, err := c.httpClient.ExecuteRequest(marketChartOp, request)
	if err != nil {
		return nil, err
	}

	var chart MarketChartResponse
	if err := json.Unmarshal(body, &chart); err != nil {
		log.Printf("CoinGecko-MarketChart: Error parsing JSON response: %v", err)
		return nil, cg.NewFetchError(marketChartOp, 0, fmt.Errorf("invalid response body: %w", err))
	}

	log.Printf("CoinGecko-MarketChart: Fetched %d prices for coin %s in %.2fs",
		len(chart.Prices), params.ID, duration.Seconds())

	c.successfulFetch.Store(true)

	return &chart, nil
}
