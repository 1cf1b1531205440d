package monitor

import (
	"context"
	"time"

	"github.com/rileyhilliard/sysmon/internal/logger"
	"github.com/rileyhilliard/sysmon/internal/procs"
	"github.com/rileyhilliard/sysmon/internal/sampler"
)

// Collector runs refresh cycles against the counter source, the process
// snapshot provider and, optionally, a host info source.
type Collector struct {
	source   sampler.Source
	provider *procs.Provider
	host     HostInfoSource
	log      logger.Logger
}

// NewCollector creates a collector. host may be nil to leave the header
// without host details; a nil log discards messages.
func NewCollector(source sampler.Source, provider *procs.Provider, host HostInfoSource, log logger.Logger) *Collector {
	if log == nil {
		log = logger.Noop()
	}
	return &Collector{
		source:   source,
		provider: provider,
		host:     host,
		log:      log,
	}
}

// Collect runs one cycle: CPU, then memory, then the process snapshot.
//
// Failures never abort the cycle. A CPU read failure reports 0% and carries
// prev forward unchanged; a memory failure reports 0%; a listing failure
// gives an empty or partial table. Each failure is recorded on the sample.
// Host info failures are only logged.
func (c *Collector) Collect(ctx context.Context, prev sampler.State) Sample {
	start := time.Now()
	s := Sample{State: prev}

	if counters, err := c.source.CPUCounters(ctx); err != nil {
		c.log.Debug("cpu counters: %v", err)
		s.Errors = append(s.Errors, err)
	} else {
		s.CPUPercent, s.State = sampler.SampleCPU(prev, counters)
	}

	if info, err := c.source.MemInfo(ctx); err != nil {
		c.log.Debug("memory counters: %v", err)
		s.Errors = append(s.Errors, err)
	} else {
		s.MemPercent = sampler.MemoryPercent(info)
	}

	table, err := c.provider.Snapshot(ctx)
	if err != nil {
		c.log.Debug("process snapshot: %v", err)
		s.Errors = append(s.Errors, err)
	}
	s.Table = table

	if c.host != nil {
		info, err := c.host.HostInfo(ctx)
		if err != nil {
			c.log.Debug("host info: %v", err)
		}
		s.Host = info
	}

	s.Time = time.Now()
	s.Elapsed = s.Time.Sub(start)
	return s
}
