package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaceholderNews(t *testing.T) {
	news := PlaceholderNews("BTC")

	assert.Equal(t, []NewsItem{
		{Title: "BTC breaks new all-time high!", URL: "https://cryptonews.example.com/article1"},
		{Title: "Experts discuss the future of BTC", URL: "https://cryptonews.example.com/article2"},
		{Title: "BTC ecosystem updates and roadmap", URL: "https://cryptonews.example.com/article3"},
	}, news)
}
