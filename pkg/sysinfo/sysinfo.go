// Package sysinfo reports process and host resource usage: memory
// snapshots, allocation deltas around a function call, and CPU load.
package sysinfo

import (
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"

	"github.com/dperussina/code-library/pkg/errors"
)

// MemorySnapshot captures heap and host memory at a point in time.
type MemorySnapshot struct {
	Timestamp       time.Time
	HeapAllocBytes  uint64
	HeapSysBytes    uint64
	TotalAllocBytes uint64
	NumGC           uint32
	GoroutineCount  int
	ProcessRSSBytes uint64
	HostUsedPercent float64
	HostAvailable   uint64
}

// Memory returns a snapshot of current memory usage. Host-level fields
// are zero when the platform does not expose them.
func Memory() MemorySnapshot {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	snap := MemorySnapshot{
		Timestamp:       time.Now(),
		HeapAllocBytes:  ms.HeapAlloc,
		HeapSysBytes:    ms.HeapSys,
		TotalAllocBytes: ms.TotalAlloc,
		NumGC:           ms.NumGC,
		GoroutineCount:  runtime.NumGoroutine(),
	}

	if proc, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if memInfo, err := proc.MemoryInfo(); err == nil {
			snap.ProcessRSSBytes = memInfo.RSS
		}
	}

	if vmStat, err := mem.VirtualMemory(); err == nil {
		snap.HostUsedPercent = vmStat.UsedPercent
		snap.HostAvailable = vmStat.Available
	}

	return snap
}

// MemoryDelta reports the allocation cost of running fn.
type MemoryDelta struct {
	AllocBytes uint64
	NumGC      uint32
	Elapsed    time.Duration
}

// MeasureMemory runs fn and returns how much it allocated. The delta
// counts cumulative allocations, so memory freed during fn still
// contributes.
func MeasureMemory(fn func()) MemoryDelta {
	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)

	start := time.Now()
	fn()
	elapsed := time.Since(start)

	runtime.ReadMemStats(&after)

	return MemoryDelta{
		AllocBytes: after.TotalAlloc - before.TotalAlloc,
		NumGC:      after.NumGC - before.NumGC,
		Elapsed:    elapsed,
	}
}

// CPUPercent samples host CPU utilization over the given interval.
// An interval of zero compares against the last sample taken.
func CPUPercent(interval time.Duration) (float64, error) {
	percents, err := cpu.Percent(interval, false)
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrorTypeInternal, "failed to sample CPU usage")
	}
	if len(percents) == 0 {
		return 0, errors.New(errors.ErrorTypeInternal, "no CPU samples returned")
	}
	return percents[0], nil
}

// ProcessCPUPercent reports the calling process's CPU utilization since
// process start.
func ProcessCPUPercent() (float64, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrorTypeInternal, "failed to open current process")
	}
	percent, err := proc.CPUPercent()
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrorTypeInternal, "failed to read process CPU usage")
	}
	return percent, nil
}

// NumCPU returns the number of logical CPUs usable by the runtime.
func NumCPU() int {
	return runtime.NumCPU()
}
