package coingecko_market_chart

import (
	"fmt"
	"net/url"
	"strconv"

	cg "github.com/coreyadam8/cryptotracker/coingecko_common"
)

const (
	MARKET_CHART_API_PATH_TEMPLATE = "/api/v3/coins/%s/market_chart"
)

type MarketChartRequestBuilder struct {
	*cg.CoingeckoRequestBuilder
	coinID string
}

// NewMarketChartRequestBuilder creates a builder for the market chart of coinID.
// The id is path-escaped.
func NewMarketChartRequestBuilder(baseURL, coinID string) *MarketChartRequestBuilder {
	apiPath := fmt.Sprintf(MARKET_CHART_API_PATH_TEMPLATE, url.PathEscape(coinID))

	rb := &MarketChartRequestBuilder{
		CoingeckoRequestBuilder: cg.NewCoingeckoRequestBuilder(baseURL, apiPath),
		coinID:                  coinID,
	}

	rb.WithCurrency("usd")
	rb.WithDays(30)
	rb.WithInterval("daily")

	return rb
}

func (rb *MarketChartRequestBuilder) WithDays(days int) *MarketChartRequestBuilder {
	rb.With("days", strconv.Itoa(days))
	return rb
}

func (rb *MarketChartRequestBuilder) WithInterval(interval string) *MarketChartRequestBuilder {
	if interval != "" {
		rb.With("interval", interval)
	}
	return rb
}
