package interfaces

import "context"

//go:generate mockgen -destination=mocks/coingecko_markets.go . ITopCoinsService

// ITopCoinsService defines the interface for the top coins fetcher
type ITopCoinsService interface {
	// TopCoins returns at most limit coins ranked by market capitalization,
	// in provider order. A zero limit selects the configured default.
	TopCoins(ctx context.Context, limit int) ([]CoinSummary, CacheStatus, error)

	// Healthy reports whether the provider answered at least once
	Healthy() bool
}

// CoinSummary is a single entry of the top coins list
type CoinSummary struct {
	// ID is the provider-stable coin identifier (e.g. "bitcoin")
	ID string `json:"id"`

	// Name is the display name (e.g. "Bitcoin")
	Name string `json:"name"`

	// Symbol is the upper-cased ticker (e.g. "BTC")
	Symbol string `json:"symbol"`

	// MarketCap in USD
	MarketCap float64 `json:"market_cap"`

	// CurrentPrice in USD
	CurrentPrice float64 `json:"current_price"`
}
