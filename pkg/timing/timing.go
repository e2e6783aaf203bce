// Package timing provides lightweight helpers for measuring how long
// a piece of code takes, logging the result through the shared logger.
package timing

import (
	"time"

	"go.uber.org/zap"

	"github.com/dperussina/code-library/pkg/logger"
)

// Timed runs fn, logs its duration at info level, and returns the duration.
func Timed(name string, fn func()) time.Duration {
	start := time.Now()
	fn()
	elapsed := time.Since(start)

	logger.Info("finished",
		zap.String("name", name),
		zap.Duration("elapsed", elapsed))

	return elapsed
}

// TimedErr runs fn, logs its duration and error state, and returns both.
func TimedErr(name string, fn func() error) (time.Duration, error) {
	start := time.Now()
	err := fn()
	elapsed := time.Since(start)

	if err != nil {
		logger.Warn("finished with error",
			zap.String("name", name),
			zap.Duration("elapsed", elapsed),
			zap.Error(err))
	} else {
		logger.Info("finished",
			zap.String("name", name),
			zap.Duration("elapsed", elapsed))
	}

	return elapsed, err
}

// Track logs the time elapsed since start. Intended for defer:
//
//	defer timing.Track("load", time.Now())
func Track(name string, start time.Time) {
	logger.Info("finished",
		zap.String("name", name),
		zap.Duration("elapsed", time.Since(start)))
}

// Stopwatch accumulates named laps for ad-hoc profiling.
type Stopwatch struct {
	start time.Time
	last  time.Time
	laps  []Lap
}

// Lap is a single named interval recorded by a Stopwatch.
type Lap struct {
	Name    string
	Elapsed time.Duration
}

// NewStopwatch creates a started stopwatch.
func NewStopwatch() *Stopwatch {
	now := time.Now()
	return &Stopwatch{start: now, last: now}
}

// Lap records the time since the previous lap (or the start) under name.
func (s *Stopwatch) Lap(name string) time.Duration {
	now := time.Now()
	elapsed := now.Sub(s.last)
	s.last = now
	s.laps = append(s.laps, Lap{Name: name, Elapsed: elapsed})
	return elapsed
}

// Total returns the time since the stopwatch started.
func (s *Stopwatch) Total() time.Duration {
	return time.Since(s.start)
}

// Laps returns all recorded laps in order.
func (s *Stopwatch) Laps() []Lap {
	return s.laps
}
