package e2etest

import (
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

const (
	marketsPath           = "/api/v3/coins/markets"
	marketChartPathPrefix = "/api/v3/coins/"
	marketChartPathSuffix = "/market_chart"
)

// MockServer is a fake CoinGecko serving canned markets and market chart data
type MockServer struct {
	server *httptest.Server

	mu           sync.Mutex
	requests     map[string]int
	lastQuery    map[string]string
	statusByPath map[string]int

	MarketsData     string
	MarketChartData map[string]string
}

// NewMockServer creates and returns a new mock server
func NewMockServer() *MockServer {
	ms := &MockServer{
		requests:     make(map[string]int),
		lastQuery:    make(map[string]string),
		statusByPath: make(map[string]int),
		MarketsData:  defaultMarketsData(),
		MarketChartData: map[string]string{
			"bitcoin":  defaultBitcoinChartData(),
			"ethereum": defaultEthereumChartData(),
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", ms.handleRequest)
	ms.server = httptest.NewServer(mux)

	return ms
}

// GetURL returns the base URL of the mock server
func (ms *MockServer) GetURL() string {
	return ms.server.URL
}

// Close closes the mock server
func (ms *MockServer) Close() {
	if ms.server != nil {
		ms.server.Close()
	}
}

// SetStatus makes every request to path answer with status
func (ms *MockServer) SetStatus(path string, status int) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.statusByPath[path] = status
}

// RequestCount returns how many requests reached path
func (ms *MockServer) RequestCount(path string) int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.requests[path]
}

// LastQuery returns the raw query of the last request to path
func (ms *MockServer) LastQuery(path string) string {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.lastQuery[path]
}

// handleRequest processes incoming requests and returns mock data
func (ms *MockServer) handleRequest(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	log.Printf("MockServer: Received request for path: %s", path)

	ms.mu.Lock()
	ms.requests[path]++
	ms.lastQuery[path] = r.URL.RawQuery
	status, overridden := ms.statusByPath[path]
	ms.mu.Unlock()

	if overridden && status != http.StatusOK {
		http.Error(w, `{"status":{"error_message":"mocked failure"}}`, status)
		return
	}

	switch {
	case path == marketsPath:
		writeJSON(w, ms.MarketsData)
	case strings.HasPrefix(path, marketChartPathPrefix) && strings.HasSuffix(path, marketChartPathSuffix):
		coinID := strings.TrimSuffix(strings.TrimPrefix(path, marketChartPathPrefix), marketChartPathSuffix)
		data, ok := ms.MarketChartData[coinID]
		if !ok {
			http.Error(w, `{"error":"coin not found"}`, http.StatusNotFound)
			return
		}
		writeJSON(w, data)
	default:
		log.Printf("MockServer: No handler for path: %s", path)
		http.NotFound(w, r)
	}
}

func writeJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(body)); err != nil {
		log.Printf("MockServer: Error writing response: %v", err)
	}
}

func defaultMarketsData() string {
	return `[
		{"id":"bitcoin","symbol":"btc","name":"Bitcoin","current_price":65000,"market_cap":1200000000000},
		{"id":"ethereum","symbol":"eth","name":"Ethereum","current_price":3500,"market_cap":400000000000},
		{"id":"solana","symbol":"sol","name":"Solana","current_price":150,"market_cap":70000000000}
	]`
}

func defaultBitcoinChartData() string {
	return `{
		"prices": [[1700000000000, 37000.5], [1700086400000, 37500.25], [1700172800000, 36900]],
		"market_caps": [[1700000000000, 720000000000]],
		"total_volumes": [[1700000000000, 25000000000]]
	}`
}

func defaultEthereumChartData() string {
	return `{"prices": [[1700000000000, 2000], [1700086400000, 2050]]}`
}

// marketChartPath returns the provider path of coinID's market chart
func marketChartPath(coinID string) string {
	return marketChartPathPrefix + coinID + marketChartPathSuffix
}
