package backend

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// retryableError wraps an error to indicate it can be retried.
type retryableError struct {
	err error
}

func (e *retryableError) Error() string { return e.err.Error() }
func (e *retryableError) Unwrap() error { return e.err }

// isRetryableError checks the whole unwrap chain for a retryableError.
func isRetryableError(err error) bool {
	var re *retryableError
	return errors.As(err, &re)
}

// withRetry runs fn under the policy: each attempt gets its own timeout, and
// failed retryable attempts back off exponentially from BaseDelay. A
// non-retryable error or context cancellation stops immediately.
func withRetry(ctx context.Context, policy RetryPolicy, fn func(context.Context) (string, error)) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= policy.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := policy.BaseDelay * time.Duration(1<<(attempt-1))
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		attemptCtx, cancel := context.WithTimeout(ctx, policy.AttemptTimeout)
		answer, err := fn(attemptCtx)
		cancel()
		if err == nil {
			return answer, nil
		}

		lastErr = err
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		if !isRetryableError(err) {
			return "", err
		}
	}
	return "", fmt.Errorf("max retries exceeded: %w", lastErr)
}
