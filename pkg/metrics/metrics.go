// Package metrics provides Prometheus instrumentation for library
// operations: how often each helper runs, how long it takes, and how
// often it fails.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OperationsTotal counts helper invocations.
	// Labels: package (e.g. "webclient"), operation (e.g. "get"),
	// status ("success"/"failure")
	OperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "codelibrary_operations_total",
			Help: "Total number of helper operations",
		},
		[]string{"package", "operation", "status"},
	)

	// OperationDuration tracks operation latency in seconds.
	// Labels: package, operation
	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "codelibrary_operation_duration_seconds",
			Help:    "Helper operation duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10), // 100µs .. ~26s
		},
		[]string{"package", "operation"},
	)

	// BytesTransferred counts payload bytes moved by I/O helpers.
	// Labels: package, operation
	BytesTransferred = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "codelibrary_bytes_transferred_total",
			Help: "Total bytes read or written by I/O helpers",
		},
		[]string{"package", "operation"},
	)

	// RetriesTotal counts retry attempts beyond the first.
	// Labels: package, operation
	RetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "codelibrary_retries_total",
			Help: "Total retry attempts",
		},
		[]string{"package", "operation"},
	)
)

// Timer measures one operation and records its outcome on Stop.
type Timer struct {
	pkg       string
	operation string
	start     time.Time
}

// NewTimer starts a timer for an operation.
func NewTimer(pkg, operation string) *Timer {
	return &Timer{pkg: pkg, operation: operation, start: time.Now()}
}

// Stop records duration and status. Returns the elapsed time.
func (t *Timer) Stop(err error) time.Duration {
	elapsed := time.Since(t.start)

	status := "success"
	if err != nil {
		status = "failure"
	}

	OperationsTotal.WithLabelValues(t.pkg, t.operation, status).Inc()
	OperationDuration.WithLabelValues(t.pkg, t.operation).Observe(elapsed.Seconds())

	return elapsed
}
