package api

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

// handleTopCoins responds with the top coins by market cap
func (s *Server) handleTopCoins(w http.ResponseWriter, r *http.Request) {
	limit, err := getIntParam(r, "limit")
	if err != nil {
		s.sendError(w, err)
		return
	}

	coins, cacheStatus, err := s.topCoinsService.TopCoins(r.Context(), limit)
	s.setCacheStatusHeader(w, cacheStatus)
	if err != nil {
		log.Printf("Server: %s failed: %v", describeRequest(r), err)
		s.sendError(w, err)
		return
	}

	s.sendJSONResponse(w, coins)
}

// handleCoinHistory responds with the daily price series of one coin
func (s *Server) handleCoinHistory(w http.ResponseWriter, r *http.Request) {
	coinID := mux.Vars(r)["id"]

	days, err := getIntParam(r, "days")
	if err != nil {
		s.sendError(w, err)
		return
	}

	series, cacheStatus, err := s.marketChartService.HistoricalSeries(r.Context(), coinID, days)
	s.setCacheStatusHeader(w, cacheStatus)
	if err != nil {
		log.Printf("Server: %s failed: %v", describeRequest(r), err)
		s.sendError(w, err)
		return
	}

	s.sendJSONResponse(w, series)
}
