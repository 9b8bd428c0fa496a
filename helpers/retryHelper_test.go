package helpers

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsTransient(t *testing.T) {
	assert.False(t, IsTransient(nil))
	assert.False(t, IsTransient(errors.New("bad request")))
	assert.True(t, IsTransient(ErrTransientUnavailable))
	assert.True(t, IsTransient(fmt.Errorf("list orders: %w", ErrTransientUnavailable)))
}

func TestRetryEventuallySucceeds(t *testing.T) {
	calls := 0
	err := RetryWithBackoff(context.Background(), 5, time.Millisecond, func() error {
		calls++
		if calls < 3 {
			return ErrTransientUnavailable
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetryStopsOnPermanentError(t *testing.T) {
	permanent := errors.New("duplicate key")
	calls := 0
	err := RetryWithBackoff(context.Background(), 5, time.Millisecond, func() error {
		calls++
		return permanent
	})

	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls)
}

func TestRetryExhaustsAttempts(t *testing.T) {
	calls := 0
	err := RetryWithBackoff(context.Background(), 3, time.Millisecond, func() error {
		calls++
		return ErrTransientUnavailable
	})

	assert.ErrorIs(t, err, ErrTransientUnavailable)
	assert.Equal(t, 3, calls)
}

func TestRetryHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := RetryWithBackoff(ctx, 5, time.Second, func() error {
		calls++
		cancel()
		return ErrTransientUnavailable
	})

	assert.ErrorIs(t, err, ErrTransientUnavailable)
	assert.Equal(t, 1, calls)
}
