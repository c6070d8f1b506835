package api

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/coreyadam8/cryptotracker/cache"
	"github.com/coreyadam8/cryptotracker/config"
	"github.com/coreyadam8/cryptotracker/dashboard"
	"github.com/coreyadam8/cryptotracker/interfaces"
	"github.com/coreyadam8/cryptotracker/metrics"
)

// CacheStatsProvider exposes memoization statistics for the health endpoint
type CacheStatsProvider interface {
	Stats() cache.ServiceStats
}

type Server struct {
	config             *config.Config
	topCoinsService    interfaces.ITopCoinsService
	marketChartService interfaces.IHistoricalSeriesService
	dashboardService   *dashboard.Service
	cacheStats         CacheStatsProvider
	cacheMetrics       *metrics.MetricsWriter
	server             *http.Server
}

func New(cfg *config.Config, topCoinsService interfaces.ITopCoinsService, marketChartService interfaces.IHistoricalSeriesService, dashboardService *dashboard.Service, cacheStats CacheStatsProvider) *Server {
	return &Server{
		config:             cfg,
		topCoinsService:    topCoinsService,
		marketChartService: marketChartService,
		dashboardService:   dashboardService,
		cacheStats:         cacheStats,
		cacheMetrics:       metrics.NewMetricsWriter(metrics.ServiceCache),
	}
}

// Handler returns the router with every endpoint and middleware attached
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.Use(requestIDMiddleware)
	if limiter := newRateLimiter(s.config.Server); limiter != nil {
		router.Use(rateLimitMiddleware(limiter))
	}

	router.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/dashboard", s.handleDashboard).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/coins/top", s.handleTopCoins).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/coins/{id}/history", s.handleCoinHistory).Methods(http.MethodGet)

	router.HandleFunc("/health", s.handleHealth)
	router.Handle("/metrics", promhttp.Handler())

	return router
}

func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:              ":" + s.config.Server.Port,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("Server starting at http://localhost:%s", s.config.Server.Port)
	log.Println("Prometheus metrics available at /metrics endpoint")

	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	return nil
}
