// Package timeutil provides datetime formatting, parsing, and arithmetic
// helpers with a set of commonly used layout constants.
package timeutil

import (
	"time"

	"github.com/dperussina/code-library/pkg/errors"
)

// Common layouts, in Go reference-time notation.
const (
	// LayoutDate is a calendar date, e.g. 2024-03-01
	LayoutDate = "2006-01-02"
	// LayoutDateTime is a human-readable timestamp, e.g. 2024-03-01 15:04:05
	LayoutDateTime = "2006-01-02 15:04:05"
	// LayoutFilename is filesystem-safe, e.g. 2024-03-01_15-04-05
	LayoutFilename = "2006-01-02_15-04-05"
	// LayoutCompact has no separators, e.g. 20240301150405
	LayoutCompact = "20060102150405"
)

// Timestamp returns the current local time formatted with the given layout.
// An empty layout defaults to LayoutFilename.
func Timestamp(layout string) string {
	if layout == "" {
		layout = LayoutFilename
	}
	return time.Now().Format(layout)
}

// Parse converts a string to a time.Time using the given layout.
// An empty layout defaults to LayoutDate.
func Parse(value, layout string) (time.Time, error) {
	if layout == "" {
		layout = LayoutDate
	}

	t, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, errors.ErrorTypeParse,
			"could not parse %q with layout %q", value, layout)
	}
	return t, nil
}

// Format converts a time.Time to a string using the given layout.
// An empty layout defaults to LayoutDateTime.
func Format(t time.Time, layout string) string {
	if layout == "" {
		layout = LayoutDateTime
	}
	return t.Format(layout)
}

// Diff returns the absolute difference between two times.
func Diff(a, b time.Time) time.Duration {
	d := a.Sub(b)
	if d < 0 {
		return -d
	}
	return d
}
