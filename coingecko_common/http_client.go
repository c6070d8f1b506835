package coingecko_common

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"time"
)

const (
	// maxErrorBodyLength caps how much of an error body ends up in logs
	maxErrorBodyLength = 512
)

// ClientOptions configures the provider HTTP client
type ClientOptions struct {
	LogPrefix         string
	ConnectionTimeout time.Duration // Timeout for establishing connection
	RequestTimeout    time.Duration // Total request timeout including reading response
}

// DefaultClientOptions returns default client options
func DefaultClientOptions() ClientOptions {
	return ClientOptions{
		LogPrefix:         "HTTP",
		ConnectionTimeout: 5 * time.Second,
		RequestTimeout:    10 * time.Second,
	}
}

// HTTPClient executes single-attempt provider requests. Every failure is
// reported as a FetchError; there are no retries.
type HTTPClient struct {
	Client        *http.Client
	Opts          ClientOptions
	StatusHandler IHttpStatusHandler
}

// NewHTTPClient creates a new provider HTTP client
func NewHTTPClient(opts ClientOptions, handler IHttpStatusHandler) *HTTPClient {
	client := &http.Client{
		Timeout: opts.RequestTimeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: opts.ConnectionTimeout,
			}).DialContext,
			TLSHandshakeTimeout: opts.ConnectionTimeout,
		},
	}

	return &HTTPClient{
		Client:        client,
		Opts:          opts,
		StatusHandler: handler,
	}
}

// ExecuteRequest executes an HTTP request once and returns the body of a 200 response
func (c *HTTPClient) ExecuteRequest(op string, req *http.Request) ([]byte, time.Duration, error) {
	requestStart := time.Now()
	resp, err := c.Client.Do(req)
	requestDuration := time.Since(requestStart)
	c.reportDuration(requestDuration)

	if err != nil {
		c.reportStatus(statusForError(err))
		log.Printf("%s: Request %s failed after %.2fs: %v", c.Opts.LogPrefix, op, requestDuration.Seconds(), err)
		return nil, requestDuration, NewFetchError(op, 0, err)
	}
	defer resp.Body.Close()

	body, err := processResponse(resp, requestDuration)
	if err != nil {
		c.reportStatus(statusForError(err))
		log.Printf("%s: Request %s failed: %v", c.Opts.LogPrefix, op, err)
		return nil, requestDuration, NewFetchError(op, resp.StatusCode, err)
	}

	c.reportStatus("success")
	return body, requestDuration, nil
}

func (c *HTTPClient) reportStatus(status string) {
	if c.StatusHandler != nil {
		c.StatusHandler.OnRequest(status)
	}
}

func (c *HTTPClient) reportDuration(duration time.Duration) {
	if c.StatusHandler != nil {
		c.StatusHandler.OnDuration(duration)
	}
}

// processResponse reads and processes the HTTP response
func processResponse(resp *http.Response, requestDuration time.Duration) ([]byte, error) {
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLength))
		return nil, fmt.Errorf("API request failed with status %d after %.2fs: %s",
			resp.StatusCode, requestDuration.Seconds(), string(body))
	}

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	return responseBody, nil
}

// statusForError maps a transport error to a metrics status label
func statusForError(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "timeout"
	}
	return "error"
}
