package coingecko_markets

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarketsRequestBuilder_SpecificBehavior(t *testing.T) {
	baseURL := "https://api.coingecko.com"

	tests := []struct {
		name          string
		configuration func(*MarketsRequestBuilder)
		checkURL      func(*testing.T, string)
	}{
		{
			name:          "Default market parameters",
			configuration: func(rb *MarketsRequestBuilder) {},
			checkURL: func(t *testing.T, urlStr string) {
				assert.True(t, strings.HasPrefix(urlStr, baseURL+"/api/v3/coins/markets"), urlStr)

				parsedURL, err := url.Parse(urlStr)
				require.NoError(t, err)
				query := parsedURL.Query()

				assert.Equal(t, "usd", query.Get("vs_currency"))
				assert.Equal(t, "market_cap_desc", query.Get("order"))
				assert.Equal(t, "1", query.Get("page"))
				assert.Equal(t, "false", query.Get("sparkline"))
				assert.Empty(t, query.Get("per_page"))
			},
		},
		{
			name: "With per page",
			configuration: func(rb *MarketsRequestBuilder) {
				rb.WithPerPage(3)
			},
			checkURL: func(t *testing.T, urlStr string) {
				parsedURL, err := url.Parse(urlStr)
				require.NoError(t, err)
				assert.Equal(t, "3", parsedURL.Query().Get("per_page"))
			},
		},
		{
			name: "Sparkline enabled",
			configuration: func(rb *MarketsRequestBuilder) {
				rb.WithSparkline(true)
			},
			checkURL: func(t *testing.T, urlStr string) {
				parsedURL, err := url.Parse(urlStr)
				require.NoError(t, err)
				assert.Equal(t, "true", parsedURL.Query().Get("sparkline"))
			},
		},
		{
			name: "Custom currency and empty order",
			configuration: func(rb *MarketsRequestBuilder) {
				rb.WithOrder("")
				rb.WithCurrency("eur")
			},
			checkURL: func(t *testing.T, urlStr string) {
				parsedURL, err := url.Parse(urlStr)
				require.NoError(t, err)
				assert.Equal(t, "eur", parsedURL.Query().Get("vs_currency"))
				assert.Equal(t, "market_cap_desc", parsedURL.Query().Get("order"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rb := NewMarketRequestBuilder(baseURL)
			tt.configuration(rb)
			tt.checkURL(t, rb.BuildURL())
		})
	}
}

func TestMarketsRequestBuilder_Build(t *testing.T) {
	req, err := NewMarketRequestBuilder("http://localhost:1234/").
		WithPerPage(10).
		WithUserAgent("test-agent").
		Build(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "GET", req.Method)
	assert.Equal(t, "/api/v3/coins/markets", req.URL.Path)
	assert.Equal(t, "test-agent", req.Header.Get("User-Agent"))
	assert.Equal(t, "application/json", req.Header.Get("Accept"))
}
