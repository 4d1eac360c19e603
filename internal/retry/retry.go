// Package retry provides a bounded retry-with-delay decorator for model
// gateway calls. Backoff is linear, not exponential: callers are
// user-initiated and latency-insensitive, one upload at a time.
package retry

import (
	"time"

	"github.com/darioristic/crm-monorepo-sub013/internal/aierror"
	"github.com/darioristic/crm-monorepo-sub013/internal/logging"
)

// sleep is swapped out in tests to keep retry tests fast.
var sleep = time.Sleep

// Do runs fn up to maxRetries+1 times and returns the last-seen error once
// the budget is exhausted. The delay before retry i is baseDelay*i.
// Configuration and validation errors are permanent and are never retried.
func Do[T any](logger logging.Logger, operation string, maxRetries int, baseDelay time.Duration, fn func() (T, error)) (T, error) {
	var lastErr error
	var zero T

	for attempt := 1; attempt <= maxRetries+1; attempt++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !aierror.IsRetryable(err) {
			if logger != nil {
				logger.WithError(err).Debug("Permanent failure, not retrying",
					logging.Field{Key: logging.FieldOperation, Value: operation},
				)
			}
			return zero, err
		}

		if attempt <= maxRetries {
			delay := baseDelay * time.Duration(attempt)
			if logger != nil {
				logger.WithError(err).Warn("Attempt failed, retrying",
					logging.Field{Key: logging.FieldOperation, Value: operation},
					logging.Field{Key: logging.FieldAttempt, Value: attempt},
					logging.Field{Key: logging.FieldDuration, Value: delay.Milliseconds()},
				)
			}
			sleep(delay)
		}
	}

	return zero, lastErr
}
