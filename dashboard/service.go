package dashboard

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/coreyadam8/cryptotracker/config"
	"github.com/coreyadam8/cryptotracker/interfaces"
	"github.com/coreyadam8/cryptotracker/metrics"
)

const (
	warnCoinsUnavailable = "Failed to fetch coin data"
	warnHistoryFormat    = "Failed to fetch historical data for %s"
)

// CoinOption is one entry of the coin selector
type CoinOption struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Symbol         string `json:"symbol"`
	PriceLabel     string `json:"price_label"`
	MarketCapLabel string `json:"market_cap_label"`
}

// Chart is everything the browser needs to draw the price chart
type Chart struct {
	X      []time.Time `json:"x"`
	Y      []float64   `json:"y"`
	Trace  TraceStyle  `json:"trace"`
	Layout ChartLayout `json:"layout"`
}

// View is the dashboard view model
type View struct {
	Title    string                  `json:"title"`
	Coins    []CoinOption            `json:"coins"`
	Selected *CoinOption             `json:"selected,omitempty"`
	Days     int                     `json:"days"`
	Series   *interfaces.PriceSeries `json:"series,omitempty"`
	Chart    *Chart                  `json:"chart,omitempty"`
	News     []NewsItem              `json:"news"`
	Warnings []string                `json:"warnings"`
}

// Degraded reports whether any provider call failed while building the view
func (v *View) Degraded() bool {
	return len(v.Warnings) > 0
}

// Service assembles the dashboard from the two fetchers. It never fails:
// provider errors turn into warnings next to empty data.
type Service struct {
	topCoins      interfaces.ITopCoinsService
	history       interfaces.IHistoricalSeriesService
	config        *config.Config
	metricsWriter *metrics.MetricsWriter
}

// NewService creates a new dashboard service
func NewService(topCoins interfaces.ITopCoinsService, history interfaces.IHistoricalSeriesService, cfg *config.Config) *Service {
	return &Service{
		topCoins:      topCoins,
		history:       history,
		config:        cfg,
		metricsWriter: metrics.NewMetricsWriter(metrics.ServiceDashboard),
	}
}

// Start implements core.Interface
func (s *Service) Start(ctx context.Context) error {
	if s.topCoins == nil || s.history == nil {
		return fmt.Errorf("fetcher dependencies not provided")
	}
	return nil
}

// Stop implements core.Interface
func (s *Service) Stop() {}

// Build fetches the coin list and the series of the selected coin.
// An empty coinID or one missing from the list selects the first coin;
// days 0 selects the configured default window.
func (s *Service) Build(ctx context.Context, coinID string, days int) *View {
	if days <= 0 {
		days = s.config.CoingeckoMarketChart.GetDefaultDays()
	}

	view := &View{
		Title:    s.config.Dashboard.GetTitle(),
		Coins:    []CoinOption{},
		Days:     days,
		News:     []NewsItem{},
		Warnings: []string{},
	}

	coins, _, err := s.topCoins.TopCoins(ctx, s.config.CoingeckoMarkets.GetDefaultLimit())
	if err != nil {
		log.Printf("Dashboard: top coins unavailable: %v", err)
		s.metricsWriter.RecordDegradedRender("coins")
		view.Warnings = append(view.Warnings, warnCoinsUnavailable)
		return view
	}

	for _, coin := range coins {
		view.Coins = append(view.Coins, CoinOption{
			ID:             coin.ID,
			Name:           coin.Name,
			Symbol:         coin.Symbol,
			PriceLabel:     FormatPrice(coin.CurrentPrice),
			MarketCapLabel: FormatMarketCap(coin.MarketCap),
		})
	}

	view.Selected = selectCoin(view.Coins, coinID)
	if view.Selected == nil {
		log.Printf("Dashboard: no coins to show")
		return view
	}
	if coinID != "" && coinID != view.Selected.ID {
		log.Printf("Dashboard: coin %s is not in the top list, showing %s", coinID, view.Selected.ID)
	}

	view.News = PlaceholderNews(view.Selected.Symbol)

	series, _, err := s.history.HistoricalSeries(ctx, view.Selected.ID, days)
	if err != nil {
		log.Printf("Dashboard: history of %s unavailable: %v", view.Selected.ID, err)
		s.metricsWriter.RecordDegradedRender("history")
		view.Warnings = append(view.Warnings, fmt.Sprintf(warnHistoryFormat, view.Selected.ID))
		series = interfaces.PriceSeries{CoinID: view.Selected.ID, Days: days, Points: []interfaces.PricePoint{}}
	}

	view.Series = &series
	view.Chart = newChart(series, ChartTitle(view.Selected.Name, days))

	return view
}

// ChartTitle returns the chart heading for a coin and window
func ChartTitle(name string, days int) string {
	return fmt.Sprintf("%s Price (Last %d Days)", name, days)
}

func selectCoin(coins []CoinOption, coinID string) *CoinOption {
	if len(coins) == 0 {
		return nil
	}
	for i := range coins {
		if coins[i].ID == coinID {
			return &coins[i]
		}
	}
	return &coins[0]
}

func newChart(series interfaces.PriceSeries, title string) *Chart {
	chart := &Chart{
		X:      make([]time.Time, 0, series.Len()),
		Y:      make([]float64, 0, series.Len()),
		Trace:  DefaultTraceStyle(),
		Layout: NewChartLayout(title),
	}
	for _, point := range series.Points {
		chart.X = append(chart.X, point.Timestamp)
		chart.Y = append(chart.Y, point.Price)
	}
	return chart
}
