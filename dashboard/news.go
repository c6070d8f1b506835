package dashboard

import "fmt"

const placeholderNewsHost = "https://cryptonews.example.com"

// NewsItem is a headline with its link
type NewsItem struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// PlaceholderNews returns the fixed headlines shown next to the chart.
// There is no news provider behind it.
func PlaceholderNews(symbol string) []NewsItem {
	return []NewsItem{
		{Title: fmt.Sprintf("%s breaks new all-time high!", symbol), URL: placeholderNewsHost + "/article1"},
		{Title: fmt.Sprintf("Experts discuss the future of %s", symbol), URL: placeholderNewsHost + "/article2"},
		{Title: fmt.Sprintf("%s ecosystem updates and roadmap", symbol), URL: placeholderNewsHost + "/article3"},
	}
}
