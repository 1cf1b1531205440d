package sampler

import (
	"context"
	"math"

	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// TicksPerSecond converts gopsutil's CPU seconds back to USER_HZ ticks.
const TicksPerSecond = 100

// GopsutilSource reads counters through gopsutil.
type GopsutilSource struct{}

// NewGopsutilSource returns a gopsutil-backed Source.
func NewGopsutilSource() *GopsutilSource {
	return &GopsutilSource{}
}

// CPUCounters returns the aggregate CPU times scaled to ticks.
func (s *GopsutilSource) CPUCounters(ctx context.Context) (CPUCounters, error) {
	times, err := cpu.TimesWithContext(ctx, false)
	if err != nil {
		return CPUCounters{}, errors.Wrap(err, "Cannot read CPU times")
	}
	if len(times) == 0 {
		return CPUCounters{}, errors.New(errors.ErrDataUnavailable, "No aggregate CPU times reported", "")
	}

	t := times[0]
	return CPUCounters{
		User:   toTicks(t.User),
		Nice:   toTicks(t.Nice),
		System: toTicks(t.System),
		Idle:   toTicks(t.Idle),
	}, nil
}

// MemInfo returns virtual memory readings converted to kilobytes.
func (s *GopsutilSource) MemInfo(ctx context.Context) (MemInfo, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return MemInfo{}, errors.Wrap(err, "Cannot read virtual memory")
	}

	return MemInfo{
		Total:   vm.Total / 1024,
		Free:    vm.Free / 1024,
		Buffers: vm.Buffers / 1024,
		Cached:  vm.Cached / 1024,
	}, nil
}

func toTicks(seconds float64) uint64 {
	if seconds <= 0 {
		return 0
	}
	return uint64(math.Round(seconds * TicksPerSecond))
}
