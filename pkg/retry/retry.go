// Package retry provides retry with jittered exponential backoff
package retry

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/dperussina/code-library/pkg/logger"
	"github.com/dperussina/code-library/pkg/metrics"
)

// Policy defines retry behavior
type Policy struct {
	MaxAttempts     int
	InitialDelay    time.Duration
	MaxDelay        time.Duration
	Multiplier      float64
	RandomizeFactor float64
}

// NewPolicy creates a retry policy with exponential backoff defaults
func NewPolicy(maxAttempts int, initialDelay time.Duration) *Policy {
	return &Policy{
		MaxAttempts:     maxAttempts,
		InitialDelay:    initialDelay,
		MaxDelay:        5 * time.Minute,
		Multiplier:      2.0,
		RandomizeFactor: 0.25,
	}
}

// Do runs a function with the retry policy. Each failed attempt is
// logged at warn level. The final attempt never sleeps.
func (p *Policy) Do(ctx context.Context, fn func() error) error {
	return p.DoIf(ctx, fn, func(error) bool { return true })
}

// DoIf runs a function with retry only while shouldRetry returns true
// for the returned error.
func (p *Policy) DoIf(ctx context.Context, fn func() error, shouldRetry func(error) bool) error {
	var lastErr error

	for attempt := 0; attempt < p.MaxAttempts; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}

		lastErr = err

		if !shouldRetry(err) {
			return err
		}

		logger.Warn("attempt failed",
			zap.Int("attempt", attempt+1),
			zap.Int("max_attempts", p.MaxAttempts),
			zap.Error(err))

		// Don't sleep after the last attempt
		if attempt == p.MaxAttempts-1 {
			break
		}

		metrics.RetriesTotal.WithLabelValues("retry", "do").Inc()

		delay := p.delay(attempt)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("retry cancelled: %w", ctx.Err())
		case <-timer.C:
		}
	}

	return fmt.Errorf("all %d attempts failed: %w", p.MaxAttempts, lastErr)
}

// delay calculates the backoff delay for a given attempt
func (p *Policy) delay(attempt int) time.Duration {
	delay := float64(p.InitialDelay) * math.Pow(p.Multiplier, float64(attempt))

	if p.MaxDelay > 0 && delay > float64(p.MaxDelay) {
		delay = float64(p.MaxDelay)
	}

	// Jitter
	if p.RandomizeFactor > 0 {
		delta := delay * p.RandomizeFactor
		minDelay := delay - delta
		maxDelay := delay + delta
		delay = minDelay + (rand.Float64() * (maxDelay - minDelay))
	}

	return time.Duration(delay)
}

// GetDelay returns the delay for a specific attempt (for testing/preview)
func (p *Policy) GetDelay(attempt int) time.Duration {
	return p.delay(attempt)
}
