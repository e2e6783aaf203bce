package sysinfo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySnapshot(t *testing.T) {
	snap := Memory()

	assert.False(t, snap.Timestamp.IsZero())
	assert.Greater(t, snap.HeapAllocBytes, uint64(0))
	assert.GreaterOrEqual(t, snap.HeapSysBytes, snap.HeapAllocBytes)
	assert.GreaterOrEqual(t, snap.GoroutineCount, 1)
}

func TestMeasureMemory(t *testing.T) {
	var sink [][]byte

	delta := MeasureMemory(func() {
		for i := 0; i < 100; i++ {
			sink = append(sink, make([]byte, 64*1024))
		}
	})

	assert.Greater(t, delta.AllocBytes, uint64(100*64*1024))
	assert.Greater(t, delta.Elapsed, time.Duration(0))
	_ = sink
}

func TestMeasureMemoryCheapFunction(t *testing.T) {
	delta := MeasureMemory(func() {})
	assert.Less(t, delta.AllocBytes, uint64(1<<20))
}

func TestCPUPercent(t *testing.T) {
	percent, err := CPUPercent(50 * time.Millisecond)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, percent, 0.0)
	assert.LessOrEqual(t, percent, 100.0*float64(NumCPU()))
}

func TestProcessCPUPercent(t *testing.T) {
	percent, err := ProcessCPUPercent()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, percent, 0.0)
}

func TestNumCPU(t *testing.T) {
	assert.GreaterOrEqual(t, NumCPU(), 1)
}
