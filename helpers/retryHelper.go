package helpers

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrTransientUnavailable marks a failure worth retrying (rate limiting,
// network hiccup). Stores wrap such errors so WithRetry can recognize them.
var ErrTransientUnavailable = errors.New("store temporarily unavailable")

const (
	RetryAttempts = 5
	RetryBase     = 250 * time.Millisecond
	retryJitter   = 150 * time.Millisecond
)

// IsTransient reports whether the error is eligible for automatic retry.
// Only read paths use this; mutating calls are never retried automatically.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrTransientUnavailable) {
		return true
	}
	return mongo.IsTimeout(err) || mongo.IsNetworkError(err)
}

// WithRetry runs fn with the default attempt count and backoff base.
func WithRetry(ctx context.Context, fn func() error) error {
	return RetryWithBackoff(ctx, RetryAttempts, RetryBase, fn)
}

// RetryWithBackoff runs fn with bounded exponential backoff plus jitter,
// retrying only on transient errors. The last error is returned once
// attempts are exhausted or the context ends.
func RetryWithBackoff(ctx context.Context, attempts int, base time.Duration, fn func() error) error {
	var last error
	wait := base
	for i := 0; i < attempts; i++ {
		last = fn()
		if last == nil || !IsTransient(last) {
			return last
		}
		jitter := time.Duration(rand.Int63n(int64(retryJitter)))
		select {
		case <-time.After(wait + jitter):
		case <-ctx.Done():
			return last
		}
		wait *= 2
	}
	return last
}
