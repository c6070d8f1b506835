package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServerConfig_Validate(t *testing.T) {
	assert.NoError(t, (&ServerConfig{Port: "8080"}).Validate())
	assert.Error(t, (&ServerConfig{RateLimitPerMinute: -1}).Validate())
	assert.Error(t, (&ServerConfig{Burst: -1}).Validate())
}

func TestServerConfig_GetBurst(t *testing.T) {
	tests := []struct {
		name     string
		config   ServerConfig
		expected int
	}{
		{name: "explicit burst", config: ServerConfig{RateLimitPerMinute: 600, Burst: 3}, expected: 3},
		{name: "one second worth of requests", config: ServerConfig{RateLimitPerMinute: 600}, expected: 10},
		{name: "never below one", config: ServerConfig{RateLimitPerMinute: 30}, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.GetBurst())
		})
	}
}

func TestDashboardConfig_GetTitle(t *testing.T) {
	assert.Equal(t, "CryptoTracker Pro", (&DashboardConfig{}).GetTitle())
	assert.Equal(t, "My Board", (&DashboardConfig{Title: "My Board"}).GetTitle())
}
