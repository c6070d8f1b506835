package api

import (
	"net/http"
)

// handleHealth responds with 200 OK to indicate the service is running
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	services := map[string]string{
		"coingecko_markets":      "unknown",
		"coingecko_market_chart": "unknown",
	}

	if s.topCoinsService.Healthy() {
		services["coingecko_markets"] = "up"
	}

	if s.marketChartService.Healthy() {
		services["coingecko_market_chart"] = "up"
	}

	status := map[string]interface{}{
		"status":   "ok",
		"services": services,
	}

	if s.cacheStats != nil {
		stats := s.cacheStats.Stats()
		s.cacheMetrics.RecordCacheSize(stats.GoCacheItems)
		status["cache"] = map[string]interface{}{
			"enabled": stats.Enabled,
			"items":   stats.GoCacheItems,
			"hits":    stats.Hits,
			"misses":  stats.Misses,
		}
	}

	s.sendJSONResponse(w, status)
}
