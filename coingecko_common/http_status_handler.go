package coingecko_common

import "time"

// IHttpStatusHandler is an interface for handling HTTP request statuses
type IHttpStatusHandler interface {
	// OnRequest handles a request with its status result
	// ("success", "error" or "timeout")
	OnRequest(status string)
	// OnDuration handles the measured duration of a request
	OnDuration(duration time.Duration)
}
