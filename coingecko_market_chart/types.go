package coingecko_market_chart

import (
	"fmt"
	"log"
	"strings"
	"time"

	cg "github.com/coreyadam8/cryptotracker/coingecko_common"
	"github.com/coreyadam8/cryptotracker/interfaces"
)

// MarketChartParams is the resolved argument tuple of a historical series request
type MarketChartParams struct {
	// ID is the provider coin id, e.g. "bitcoin"
	ID string

	// Currency to compare against, e.g. "usd"
	Currency string

	// Days is the window size counted back from now
	Days int

	// Interval is the provider granularity; "daily" for the dashboard
	Interval string
}

// Validate checks the caller supplied part of the params
func (p *MarketChartParams) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return cg.InvalidParams("coin ID is required")
	}
	if p.Days < 1 {
		return cg.InvalidParams("days must be positive, got %d", p.Days)
	}
	return nil
}

// MarketChartData represents a single data point [timestamp, value]
type MarketChartData [2]float64

// MarketChartResponse represents the market chart API response structure.
// Only the prices are used; market caps and volumes are decoded for completeness.
type MarketChartResponse struct {
	// Prices contains historical price data as [timestamp, price] pairs
	Prices []MarketChartData `json:"prices"`

	// MarketCaps contains historical market cap data as [timestamp, market_cap] pairs
	MarketCaps []MarketChartData `json:"market_caps,omitempty"`

	// TotalVolumes contains historical volume data as [timestamp, total_volume] pairs
	TotalVolumes []MarketChartData `json:"total_volumes,omitempty"`
}

// ToPriceSeries maps every [epochMillis, price] pair to a PricePoint in provider order.
// A response without prices gives an empty, non-nil series.
func (r *MarketChartResponse) ToPriceSeries(coinID string, days int) interfaces.PriceSeries {
	points := make([]interfaces.PricePoint, 0, len(r.Prices))
	for i, pair := range r.Prices {
		point := interfaces.PricePoint{
			Timestamp: time.UnixMilli(int64(pair[0])).UTC(),
			Price:     pair[1],
		}
		if i > 0 && point.Timestamp.Before(points[i-1].Timestamp) {
			log.Printf("CoinGecko-MarketChart: %s point %d is older than the previous one", coinID, i)
		}
		points = append(points, point)
	}

	return interfaces.PriceSeries{
		CoinID: coinID,
		Days:   days,
		Points: points,
	}
}

func (p MarketChartParams) String() string {
	return fmt.Sprintf("%s/%s/%dd/%s", p.ID, p.Currency, p.Days, p.Interval)
}
