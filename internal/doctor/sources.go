package doctor

import (
	"context"
	"fmt"
	"time"

	"github.com/rileyhilliard/sysmon/internal/config"
	"github.com/rileyhilliard/sysmon/internal/procs"
	"github.com/rileyhilliard/sysmon/internal/sampler"
	"github.com/spf13/afero"
)

// CounterCheck reads CPU and memory counters once from a source.
type CounterCheck struct {
	Label  string
	Source sampler.Source
}

func (c *CounterCheck) Name() string     { return "counters_" + c.Label }
func (c *CounterCheck) Category() string { return CategorySources }

func (c *CounterCheck) Run() CheckResult {
	ctx := context.Background()

	counters, err := c.Source.CPUCounters(ctx)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("CPU counters (%s) unreadable", c.Label),
			Suggestion: err.Error(),
		}
	}
	info, err := c.Source.MemInfo(ctx)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Memory counters (%s) unreadable", c.Label),
			Suggestion: err.Error(),
		}
	}

	cpu, _ := sampler.SampleCPU(sampler.State{}, counters)
	return CheckResult{
		Name:   c.Name(),
		Status: StatusPass,
		Message: fmt.Sprintf("Counters (%s): cpu %.1f%% since boot, memory %.1f%% used",
			c.Label, cpu, sampler.MemoryPercent(info)),
	}
}

// ListingCheck takes one process snapshot through a lister.
type ListingCheck struct {
	Label   string
	Lister  procs.Lister
	Timeout time.Duration
}

func (c *ListingCheck) Name() string     { return "listing_" + c.Label }
func (c *ListingCheck) Category() string { return CategorySources }

func (c *ListingCheck) Run() CheckResult {
	table, err := procs.NewProvider(c.Lister, c.Timeout, nil).Snapshot(context.Background())
	if err != nil && len(table) == 0 {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Process listing (%s) failed", c.Label),
			Suggestion: err.Error(),
		}
	}
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("Process listing (%s) incomplete: %d processes", c.Label, len(table)),
			Suggestion: err.Error(),
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Process listing (%s): %d processes, busiest %q", c.Label, len(table), table[0].Command),
	}
}

// NewSourceChecks returns counter and listing checks for both backends,
// procfs under cfg.ProcRoot read from fs plus ps, and gopsutil.
func NewSourceChecks(cfg *config.Config, fs afero.Fs) []Check {
	return []Check{
		&CounterCheck{Label: config.SourceProcfs, Source: sampler.NewProcSource(fs, cfg.ProcRoot)},
		&ListingCheck{Label: "ps", Lister: procs.NewPSLister(), Timeout: cfg.ListTimeout},
		&CounterCheck{Label: config.SourceGopsutil, Source: sampler.NewGopsutilSource()},
		&ListingCheck{Label: config.SourceGopsutil, Lister: procs.NewGopsutilLister(), Timeout: cfg.ListTimeout},
	}
}
