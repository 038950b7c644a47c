package jikan

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrRetriesExhausted is returned when every attempt failed without a
	// captured error.
	ErrRetriesExhausted = errors.New("jikan: failed after multiple retries")

	// ErrInvalidID is returned for non-positive MAL ids before any I/O.
	ErrInvalidID = errors.New("jikan: mal_id must be positive")

	// ErrResponseTooLarge is returned for a 2xx body over the 4 MiB read cap.
	ErrResponseTooLarge = errors.New("jikan: response body too large")
)

// NetworkError is a transport failure (DNS, refused connection, reset).
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("jikan: request %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// RateLimitError is an HTTP 429 from upstream.
type RateLimitError struct {
	URL string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("jikan: rate limit exceeded: %s", e.URL)
}

func (e *RateLimitError) StatusCode() int { return http.StatusTooManyRequests }

// HTTPStatusError is any non-2xx response other than 429.
type HTTPStatusError struct {
	URL    string
	Status int
	Body   string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("jikan: status %d body=%q", e.Status, e.Body)
}

func (e *HTTPStatusError) StatusCode() int { return e.Status }

// ParseError means the upstream body was not valid JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("jikan: decode error: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError reports the first place a payload diverges from its schema.
type ValidationError struct {
	Path     string
	Expected string
	Actual   string
}

func (e *ValidationError) Error() string {
	path := e.Path
	if path == "" {
		path = "$"
	}
	return fmt.Sprintf("jikan: invalid payload at %s: expected %s, got %s", path, e.Expected, e.Actual)
}

// Error kinds used as log fields and for gateway error mapping.
const (
	KindNetwork    = "network"
	KindRateLimit  = "rate_limit"
	KindHTTPStatus = "http_status"
	KindParse      = "parse"
	KindValidation = "validation"
	KindOther      = "other"
)

// Kind classifies err into one of the Kind* constants.
func Kind(err error) string {
	var (
		netErr   *NetworkError
		rlErr    *RateLimitError
		stErr    *HTTPStatusError
		parseErr *ParseError
		valErr   *ValidationError
	)
	switch {
	case errors.As(err, &rlErr):
		return KindRateLimit
	case errors.As(err, &stErr):
		return KindHTTPStatus
	case errors.As(err, &parseErr):
		return KindParse
	case errors.As(err, &valErr):
		return KindValidation
	case errors.As(err, &netErr):
		return KindNetwork
	default:
		return KindOther
	}
}

// retryable reports whether the fetcher may spend another attempt on err.
func retryable(err error) bool {
	var (
		netErr *NetworkError
		rlErr  *RateLimitError
	)
	return errors.As(err, &rlErr) || errors.As(err, &netErr)
}
