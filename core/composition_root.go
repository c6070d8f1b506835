package core

import (
	"context"

	"github.com/coreyadam8/cryptotracker/api"
	"github.com/coreyadam8/cryptotracker/cache"
	"github.com/coreyadam8/cryptotracker/coingecko_market_chart"
	"github.com/coreyadam8/cryptotracker/coingecko_markets"
	"github.com/coreyadam8/cryptotracker/config"
	"github.com/coreyadam8/cryptotracker/dashboard"
)

// Setup creates and registers all services
func Setup(ctx context.Context, cfg *config.Config) (*Registry, error) {
	registry := NewRegistry()

	// One process-wide cache shared by both fetchers
	cacheService := cache.NewService(cfg.Cache)
	registry.Register(cacheService)

	// Create CoinGecko Markets service with cache dependency
	marketsService := coingecko_markets.NewService(cacheService, cfg)
	registry.Register(marketsService)

	// Create CoinGecko Market Chart service with cache dependency
	marketChartService := coingecko_market_chart.NewService(cacheService, cfg)
	registry.Register(marketChartService)

	dashboardService := dashboard.NewService(marketsService, marketChartService, cfg)
	registry.Register(dashboardService)

	// Create HTTP server and register it as a core
	server := api.New(cfg, marketsService, marketChartService, dashboardService, cacheService)
	registry.Register(server)

	return registry, nil
}
