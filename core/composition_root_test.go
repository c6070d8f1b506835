package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreyadam8/cryptotracker/api"
	"github.com/coreyadam8/cryptotracker/cache"
	"github.com/coreyadam8/cryptotracker/coingecko_market_chart"
	"github.com/coreyadam8/cryptotracker/coingecko_markets"
	"github.com/coreyadam8/cryptotracker/config"
	"github.com/coreyadam8/cryptotracker/dashboard"
)

func TestSetup(t *testing.T) {
	registry, err := Setup(context.Background(), config.DefaultConfig())
	require.NoError(t, err)
	require.Len(t, registry.services, 5)

	assert.IsType(t, &cache.Service{}, registry.services[0])
	assert.IsType(t, &coingecko_markets.Service{}, registry.services[1])
	assert.IsType(t, &coingecko_market_chart.Service{}, registry.services[2])
	assert.IsType(t, &dashboard.Service{}, registry.services[3])
	assert.IsType(t, &api.Server{}, registry.services[4])
}
