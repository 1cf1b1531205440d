package sampler

import (
	"context"
	"runtime"
	"testing"

	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProcFs(t *testing.T, stat, meminfo string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	if stat != "" {
		require.NoError(t, afero.WriteFile(fs, "/proc/stat", []byte(stat), 0o444))
	}
	if meminfo != "" {
		require.NoError(t, afero.WriteFile(fs, "/proc/meminfo", []byte(meminfo), 0o444))
	}
	return fs
}

func TestProcSource(t *testing.T) {
	fs := newProcFs(t,
		"cpu  300 0 100 600 0 0 0 0 0 0\ncpu0 300 0 100 600 0 0 0 0 0 0\n",
		"MemTotal: 1000 kB\nMemFree: 400 kB\nBuffers: 100 kB\nCached: 100 kB\n",
	)
	src := NewProcSource(fs, "/proc")
	ctx := context.Background()

	counters, err := src.CPUCounters(ctx)
	require.NoError(t, err)
	assert.Equal(t, CPUCounters{User: 300, System: 100, Idle: 600}, counters)

	pct, _ := SampleCPU(State{}, counters)
	assert.InDelta(t, 40.0, pct, 0.0001)

	info, err := src.MemInfo(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 40.0, MemoryPercent(info), 0.0001)
}

func TestProcSource_CustomRoot(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/host/proc/stat", []byte("cpu 1 2 3 4\n"), 0o444))

	src := NewProcSource(fs, "/host/proc")
	counters, err := src.CPUCounters(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(4), counters.Idle)
}

func TestProcSource_MissingFiles(t *testing.T) {
	src := NewProcSource(afero.NewMemMapFs(), "/proc")
	ctx := context.Background()

	_, err := src.CPUCounters(ctx)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrDataUnavailable))

	_, err = src.MemInfo(ctx)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrDataUnavailable))
}

func TestProcSource_ImplementsSource(t *testing.T) {
	var _ Source = NewProcSource(afero.NewMemMapFs(), "/proc")
	var _ Source = NewGopsutilSource()
}

func TestGopsutilSource_LiveHost(t *testing.T) {
	if runtime.GOOS != "linux" && runtime.GOOS != "darwin" {
		t.Skip("gopsutil live readings only checked on linux and darwin")
	}
	src := NewGopsutilSource()
	ctx := context.Background()

	info, err := src.MemInfo(ctx)
	if err != nil {
		t.Skipf("memory counters unavailable: %v", err)
	}
	assert.Greater(t, info.Total, uint64(0))
	pct := MemoryPercent(info)
	assert.GreaterOrEqual(t, pct, 0.0)
	assert.LessOrEqual(t, pct, 100.0)

	counters, err := src.CPUCounters(ctx)
	if err != nil {
		t.Skipf("cpu counters unavailable: %v", err)
	}
	cpuPct, _ := SampleCPU(State{}, counters)
	assert.GreaterOrEqual(t, cpuPct, 0.0)
	assert.LessOrEqual(t, cpuPct, 100.0)
}

func TestToTicks(t *testing.T) {
	assert.Equal(t, uint64(0), toTicks(-1))
	assert.Equal(t, uint64(0), toTicks(0))
	assert.Equal(t, uint64(150), toTicks(1.5))
	assert.Equal(t, uint64(1), toTicks(0.006))
}
