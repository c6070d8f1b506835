package api

import (
	"log"
	"net/http"

	"github.com/coreyadam8/cryptotracker/dashboard"
)

// buildDashboard never fails; a malformed days value falls back to the default window
func (s *Server) buildDashboard(r *http.Request) *dashboard.View {
	days, err := getIntParam(r, "days")
	if err != nil {
		log.Printf("Server: %s: %v, using default days", describeRequest(r), err)
		days = 0
	}

	view := s.dashboardService.Build(r.Context(), getParamLowercase(r, "coin"), days)
	if view.Degraded() {
		log.Printf("Server: %s rendered with warnings %v", describeRequest(r), view.Warnings)
	}
	return view
}

// handleIndex renders the HTML dashboard
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	view := s.buildDashboard(r)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboard.Render(w, view); err != nil {
		log.Printf("Server: failed to render dashboard: %v", err)
		http.Error(w, "Error rendering dashboard", http.StatusInternalServerError)
	}
}

// handleDashboard responds with the dashboard view model
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	s.sendJSONResponse(w, s.buildDashboard(r))
}
