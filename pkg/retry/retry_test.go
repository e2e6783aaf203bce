package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cberrors "github.com/dperussina/code-library/pkg/errors"
	"github.com/dperussina/code-library/pkg/metrics"
)

func fastPolicy(attempts int) *Policy {
	return &Policy{
		MaxAttempts:     attempts,
		InitialDelay:    time.Millisecond,
		MaxDelay:        10 * time.Millisecond,
		Multiplier:      2.0,
		RandomizeFactor: 0,
	}
}

func TestDoSucceedsFirstTry(t *testing.T) {
	calls := 0
	err := fastPolicy(3).Do(context.Background(), func() error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDoRetriesUntilSuccess(t *testing.T) {
	calls := 0
	err := fastPolicy(5).Do(context.Background(), func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDoExhaustsAttempts(t *testing.T) {
	calls := 0
	err := fastPolicy(3).Do(context.Background(), func() error {
		calls++
		return errors.New("always fails")
	})

	require.Error(t, err)
	assert.Equal(t, 3, calls)
	assert.Contains(t, err.Error(), "all 3 attempts failed")
}

func TestDoIfStopsOnNonRetryable(t *testing.T) {
	calls := 0
	permanent := cberrors.New(cberrors.ErrorTypeValidation, "bad input")

	err := fastPolicy(5).DoIf(context.Background(), func() error {
		calls++
		return permanent
	}, cberrors.IsRetryable)

	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.True(t, cberrors.IsType(err, cberrors.ErrorTypeValidation))
}

func TestDoHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	p := &Policy{
		MaxAttempts:  5,
		InitialDelay: time.Hour, // would block without cancellation
		Multiplier:   2.0,
	}

	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	err := p.Do(ctx, func() error { return errors.New("fail") })

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDoCountsRetries(t *testing.T) {
	counter := metrics.RetriesTotal.WithLabelValues("retry", "do")
	before := testutil.ToFloat64(counter)

	calls := 0
	err := fastPolicy(4).Do(context.Background(), func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})

	require.NoError(t, err)
	// Two failed attempts were retried; the first try is not a retry
	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}

func TestDoFirstTrySuccessCountsNoRetries(t *testing.T) {
	counter := metrics.RetriesTotal.WithLabelValues("retry", "do")
	before := testutil.ToFloat64(counter)

	err := fastPolicy(3).Do(context.Background(), func() error { return nil })

	require.NoError(t, err)
	assert.Equal(t, before, testutil.ToFloat64(counter))
}

func TestDelayGrowsAndCaps(t *testing.T) {
	p := &Policy{
		MaxAttempts:  10,
		InitialDelay: 10 * time.Millisecond,
		MaxDelay:     80 * time.Millisecond,
		Multiplier:   2.0,
	}

	assert.Equal(t, 10*time.Millisecond, p.GetDelay(0))
	assert.Equal(t, 20*time.Millisecond, p.GetDelay(1))
	assert.Equal(t, 40*time.Millisecond, p.GetDelay(2))
	assert.Equal(t, 80*time.Millisecond, p.GetDelay(3))
	assert.Equal(t, 80*time.Millisecond, p.GetDelay(6))
}
