package interfaces

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mocks/coingecko_market_chart.go . IHistoricalSeriesService

// IHistoricalSeriesService defines the interface for the historical price series fetcher
type IHistoricalSeriesService interface {
	// HistoricalSeries returns the daily USD price series of coinID over the
	// last days days. A zero days selects the configured default.
	HistoricalSeries(ctx context.Context, coinID string, days int) (PriceSeries, CacheStatus, error)

	// Healthy reports whether the provider answered at least once
	Healthy() bool
}

// PricePoint is a single sample of a price series
type PricePoint struct {
	Timestamp time.Time `json:"timestamp"`
	Price     float64   `json:"price"`
}

// PriceSeries is the ordered price history of one coin
type PriceSeries struct {
	CoinID string       `json:"coin_id"`
	Days   int          `json:"days"`
	Points []PricePoint `json:"points"`
}

// Len returns the number of points in the series
func (s PriceSeries) Len() int {
	return len(s.Points)
}

// Empty reports whether the series holds no points
func (s PriceSeries) Empty() bool {
	return len(s.Points) == 0
}
