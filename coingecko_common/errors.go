package coingecko_common

import (
	"errors"
	"fmt"
)

var (
	// ErrProviderUnavailable covers every non-success provider outcome:
	// HTTP error status, network failure, timeout and undecodable bodies.
	// Rate limiting is not told apart from an outage.
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrInvalidParams is returned for caller mistakes before any request is made
	ErrInvalidParams = errors.New("invalid parameters")
)

// FetchError describes a failed provider call. It always matches
// ErrProviderUnavailable with errors.Is.
type FetchError struct {
	Op         string // e.g. "coins/markets"
	StatusCode int    // 0 when no response was received
	Err        error
}

// Error leaves StatusCode out; the wrapped error already describes the response.
func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, ErrProviderUnavailable, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func (e *FetchError) Is(target error) bool {
	return target == ErrProviderUnavailable
}

// NewFetchError wraps err as a provider failure of op
func NewFetchError(op string, statusCode int, err error) *FetchError {
	return &FetchError{Op: op, StatusCode: statusCode, Err: err}
}

// InvalidParams formats a caller error matching ErrInvalidParams
func InvalidParams(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidParams, fmt.Sprintf(format, args...))
}
