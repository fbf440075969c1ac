package prana

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"
)

func TestParseRetryAfter(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected time.Duration
	}{
		{"empty", "", 0},
		{"seconds", "120", 120 * time.Second},
		{"zero seconds", "0", 0},
		{"negative", "-5", 0},
		{"invalid", "abc", 0},
		{"past date", "Mon, 02 Jan 2006 15:04:05 GMT", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseRetryAfter(tt.value)
			if got != tt.expected {
				t.Errorf("parseRetryAfter(%q) = %v, want %v", tt.value, got, tt.expected)
			}
		})
	}

	t.Run("future date", func(t *testing.T) {
		value := time.Now().Add(time.Hour).UTC().Format(time.RFC1123)
		got := parseRetryAfter(value)
		if got <= 58*time.Minute || got > time.Hour {
			t.Errorf("parseRetryAfter(%q) = %v, want about an hour", value, got)
		}
	})
}

func TestWaitForRateLimit(t *testing.T) {
	t.Run("returns immediately for other errors", func(t *testing.T) {
		err := newAPIError(KindNotFound, http.StatusNotFound, "Resource not found")
		if waitErr := WaitForRateLimit(context.Background(), err); waitErr != nil {
			t.Errorf("unexpected error: %v", waitErr)
		}
		if waitErr := WaitForRateLimit(context.Background(), nil); waitErr != nil {
			t.Errorf("unexpected error: %v", waitErr)
		}
	})

	t.Run("returns immediately without a hint", func(t *testing.T) {
		err := newAPIError(KindRateLimited, http.StatusTooManyRequests, "Rate limit exceeded")
		start := time.Now()
		if waitErr := WaitForRateLimit(context.Background(), err); waitErr != nil {
			t.Errorf("unexpected error: %v", waitErr)
		}
		if time.Since(start) > 100*time.Millisecond {
			t.Error("should not have waited")
		}
	})

	t.Run("waits for the hint", func(t *testing.T) {
		err := newAPIError(KindRateLimited, http.StatusTooManyRequests, "Rate limit exceeded")
		err.RetryAfter = 50 * time.Millisecond
		start := time.Now()
		if waitErr := WaitForRateLimit(context.Background(), err); waitErr != nil {
			t.Errorf("unexpected error: %v", waitErr)
		}
		if time.Since(start) < 50*time.Millisecond {
			t.Error("returned before the hint elapsed")
		}
	})

	t.Run("hint survives RPC wrapping", func(t *testing.T) {
		inner := newAPIError(KindRateLimited, http.StatusTooManyRequests, "Rate limit exceeded")
		inner.RetryAfter = 30 * time.Second
		wrapped := &APIError{Kind: KindRPC, StatusCode: http.StatusTooManyRequests, Message: "RPC command 'm' failed", Err: inner}

		if got := retryAfter(wrapped); got != 30*time.Second {
			t.Errorf("retryAfter = %v, want 30s", got)
		}
		if got := retryAfter(errors.New("plain")); got != 0 {
			t.Errorf("retryAfter(plain) = %v, want 0", got)
		}
	})

	t.Run("context canceled", func(t *testing.T) {
		err := newAPIError(KindRateLimited, http.StatusTooManyRequests, "Rate limit exceeded")
		err.RetryAfter = time.Hour

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if waitErr := WaitForRateLimit(ctx, err); !errors.Is(waitErr, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", waitErr)
		}
	})
}
