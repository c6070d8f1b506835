package metrics

import (
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsPrefix is the prefix used for all metrics
const MetricsPrefix = "cryptotracker_"

// Service constants
const (
	ServiceTopCoins    = "top-coins"
	ServiceMarketChart = "market-chart"
	ServiceDashboard   = "dashboard"
	ServiceCache       = "cache"
)

var (
	// Global Coingecko request counter (all services)
	// Cardinality: ~3 (success, error, timeout)
	CoingeckoRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "coingecko_requests_total",
			Help: "Total number of HTTP requests to Coingecko API across all services",
		},
		[]string{"status"},
	)

	// Service-specific Coingecko request counter
	// Cardinality: ~6 (2 services × 3 statuses)
	ServiceCoingeckoRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "service_coingecko_requests_total",
			Help: "Total number of HTTP requests to Coingecko API per service",
		},
		[]string{"service", "status"},
	)

	// Provider request latency per service
	RequestLatencyHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: MetricsPrefix + "request_latency_seconds",
			Help: "Coingecko request latency by service",
		},
		[]string{"service"},
	)

	// Memoization outcome per service
	// Cardinality: ~4 (2 services × hit/miss)
	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "cache_lookups_total",
			Help: "Memoized calls by cache status",
		},
		[]string{"service", "status"},
	)

	// Service cache size
	ServiceCacheSizeGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricsPrefix + "service_cache_size",
			Help: "Number of items in service cache",
		},
		[]string{"service"},
	)

	// Dashboard renders that fell back to empty data
	DegradedRendersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "degraded_renders_total",
			Help: "Dashboard renders that showed a warning instead of provider data",
		},
		[]string{"reason"},
	)
)

// MetricsWriter provides a unified interface for recording service metrics
type MetricsWriter struct {
	serviceName string
}

// NewMetricsWriter creates a new MetricsWriter for the specified service
func NewMetricsWriter(serviceName string) *MetricsWriter {
	return &MetricsWriter{
		serviceName: serviceName,
	}
}

// GetServiceName returns the service name
func (mw *MetricsWriter) GetServiceName() string {
	return mw.serviceName
}

// RecordServiceCoingeckoRequest records a service-specific Coingecko API request
func (mw *MetricsWriter) RecordServiceCoingeckoRequest(status string) {
	CoingeckoRequestsTotal.WithLabelValues(status).Inc()
	ServiceCoingeckoRequestsTotal.WithLabelValues(mw.serviceName, status).Inc()
	log.Printf("Metrics: %s Coingecko request recorded with status %s", mw.serviceName, status)
}

// RecordRequestLatency records the duration of a provider request
func (mw *MetricsWriter) RecordRequestLatency(duration time.Duration) {
	RequestLatencyHistogram.WithLabelValues(mw.serviceName).Observe(duration.Seconds())
}

// RecordCacheLookup records whether a memoized call was answered from the cache
func (mw *MetricsWriter) RecordCacheLookup(status string) {
	CacheLookupsTotal.WithLabelValues(mw.serviceName, status).Inc()
}

// RecordCacheSize records the number of items in service cache
func (mw *MetricsWriter) RecordCacheSize(size int) {
	ServiceCacheSizeGauge.WithLabelValues(mw.serviceName).Set(float64(size))
}

// RecordDegradedRender records a dashboard render that used fallback data
func (mw *MetricsWriter) RecordDegradedRender(reason string) {
	DegradedRendersTotal.WithLabelValues(reason).Inc()
	log.Printf("Metrics: %s degraded render (%s)", mw.serviceName, reason)
}

// Implement IHttpStatusHandler interface for MetricsWriter
// OnRequest records an HTTP request with its status
func (mw *MetricsWriter) OnRequest(status string) {
	mw.RecordServiceCoingeckoRequest(status)
}

// OnDuration records how long a provider request took
func (mw *MetricsWriter) OnDuration(duration time.Duration) {
	mw.RecordRequestLatency(duration)
}
