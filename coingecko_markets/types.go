package coingecko_markets

import (
	"strings"

	"github.com/coreyadam8/cryptotracker/interfaces"
)

// CoinData is one row of the /coins/markets response.
// Only the fields the dashboard needs are decoded.
type CoinData struct {
	ID           string  `json:"id"`
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name"`
	CurrentPrice float64 `json:"current_price"`
	MarketCap    float64 `json:"market_cap"`
}

// ToSummary converts the provider row into a CoinSummary with an upper-cased ticker
func (c CoinData) ToSummary() interfaces.CoinSummary {
	return interfaces.CoinSummary{
		ID:           c.ID,
		Name:         c.Name,
		Symbol:       strings.ToUpper(c.Symbol),
		MarketCap:    c.MarketCap,
		CurrentPrice: c.CurrentPrice,
	}
}

// toSummaries converts rows in provider order, keeping at most limit of them
func toSummaries(coins []CoinData, limit int) []interfaces.CoinSummary {
	if limit > 0 && len(coins) > limit {
		coins = coins[:limit]
	}

	summaries := make([]interfaces.CoinSummary, 0, len(coins))
	for _, coin := range coins {
		summaries = append(summaries, coin.ToSummary())
	}
	return summaries
}
