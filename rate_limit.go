package prana

import (
	"context"
	"errors"
	"strconv"
	"time"
)

// maxRateLimitWait caps how long WaitForRateLimit will block.
const maxRateLimitWait = 5 * time.Minute

// parseRetryAfter parses the Retry-After header value.
// It handles both delta-seconds (e.g., "120") and HTTP-date formats.
func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}

	if seconds, err := strconv.Atoi(value); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}

	if t, err := time.Parse(time.RFC1123, value); err == nil {
		delta := time.Until(t)
		if delta > 0 {
			return delta
		}
	}

	return 0
}

// WaitForRateLimit blocks for the Retry-After duration carried by a rate-limit
// error. It returns immediately if err is not a rate-limit error or carries no
// Retry-After hint. The client never retries on its own; this is a helper for
// callers that implement their own retry policy.
//
// Example:
//
//	err := client.ButtonClick(ctx, deviceID, prana.ButtonPower)
//	if prana.IsRateLimited(err) {
//	    if waitErr := prana.WaitForRateLimit(ctx, err); waitErr != nil {
//	        return waitErr // Context canceled
//	    }
//	    err = client.ButtonClick(ctx, deviceID, prana.ButtonPower)
//	}
func WaitForRateLimit(ctx context.Context, err error) error {
	if !IsRateLimited(err) {
		return nil
	}

	wait := retryAfter(err)
	if wait <= 0 {
		return nil
	}
	if wait > maxRateLimitWait {
		wait = maxRateLimitWait
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// retryAfter returns the first Retry-After hint found in err's chain. RPC
// errors wrap the original rate-limit error, so the chain is walked.
func retryAfter(err error) time.Duration {
	for err != nil {
		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			return 0
		}
		if apiErr.RetryAfter > 0 {
			return apiErr.RetryAfter
		}
		err = apiErr.Err
	}
	return 0
}
