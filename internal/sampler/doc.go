// Package sampler turns host-wide OS counters into utilization percentages.
//
// CPU usage is derived from two successive readings of the cumulative tick
// counters in /proc/stat; memory usage from a single /proc/meminfo reading.
// Counter readings come from a Source: ProcSource parses procfs through an
// afero filesystem, GopsutilSource asks gopsutil and works off Linux too.
//
// The sampler holds no state of its own. The previous CPU reading lives in a
// State value owned by the caller and threaded through SampleCPU.
package sampler
