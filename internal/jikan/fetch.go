package jikan

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultMaxAttempts = 3
	DefaultBaseDelay   = time.Second

	maxBodyBytes   = 4 << 20
	maxErrBodySnip = 200
	userAgent      = "anime-catalog/1.0"
)

// Waiter throttles outbound calls. *rate.Limiter satisfies it.
type Waiter interface {
	Wait(ctx context.Context) error
}

// Fetcher performs GET requests with bounded retries. Every attempt,
// including the first, is preceded by BaseDelay * 2^attempt so bursts never
// hit the upstream rate limit head on.
type Fetcher struct {
	HTTPClient  *http.Client
	Log         *zap.Logger
	MaxAttempts int
	BaseDelay   time.Duration
	// Limiter, when set, is waited on after the backoff delay.
	Limiter Waiter
	// Sleep replaces the real delay in tests.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Fetch returns the body of a 2xx response for target. 429 and transport
// failures consume an attempt; any other status fails immediately.
func (f *Fetcher) Fetch(ctx context.Context, target string) ([]byte, error) {
	attempts := f.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultMaxAttempts
	}
	base := f.BaseDelay
	if base <= 0 {
		base = DefaultBaseDelay
	}
	sleep := f.Sleep
	if sleep == nil {
		sleep = sleepCtx
	}
	log := f.Log
	if log == nil {
		log = zap.NewNop()
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if err := sleep(ctx, backoffDelay(base, attempt)); err != nil {
			return nil, err
		}
		if f.Limiter != nil {
			if err := f.Limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		body, err := f.do(ctx, target)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if !retryable(err) || ctx.Err() != nil {
			return nil, err
		}
		log.Warn("jikan attempt failed",
			zap.String("url", target),
			zap.Int("attempt", attempt+1),
			zap.Int("max_attempts", attempts),
			zap.String("kind", Kind(err)),
			zap.Error(err))
	}
	if lastErr == nil {
		return nil, ErrRetriesExhausted
	}
	return nil, lastErr
}

func (f *Fetcher) do(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	client := f.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &NetworkError{URL: target, Err: err}
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return nil, &NetworkError{URL: target, Err: err}
	}
	if len(b) > maxBodyBytes && resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return nil, fmt.Errorf("%w: %s", ErrResponseTooLarge, target)
	}
	b = b[:min(len(b), maxBodyBytes)]
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &RateLimitError{URL: target}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPStatusError{URL: target, Status: resp.StatusCode, Body: string(b[:min(len(b), maxErrBodySnip)])}
	}
	return b, nil
}
