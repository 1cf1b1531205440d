package monitor

import (
	"time"

	"github.com/rileyhilliard/sysmon/internal/procs"
	"github.com/rileyhilliard/sysmon/internal/sampler"
)

// MaxSearchLen is the longest filter term accepted.
const MaxSearchLen = 63

// Phase is the lifecycle state of the dashboard loop.
type Phase int

const (
	Running Phase = iota
	Terminated
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// ViewState is the user-controlled part of the process table view.
type ViewState struct {
	SearchTerm   string
	ScrollOffset int
}

// MonitorState is everything the loop carries from one cycle to the next.
type MonitorState struct {
	Sampler sampler.State
	Table   procs.Table
	View    ViewState
}

// View is the window of the process table currently on screen.
type View struct {
	Visible []procs.Process
	Matched int
	Offset  int
}

// HostInfo describes the machine in the dashboard header.
type HostInfo struct {
	Hostname string
	Platform string
	Kernel   string
	Uptime   time.Duration
	Load1    float64
	Load5    float64
	Load15   float64
}

// Sample is the outcome of one refresh cycle.
type Sample struct {
	CPUPercent float64
	MemPercent float64
	// State is the sampler state to carry into the next cycle. It equals the
	// previous state when the CPU counters could not be read.
	State sampler.State
	Table procs.Table
	Host  HostInfo
	// Errors lists the collaborators that failed this cycle.
	Errors  []error
	Time    time.Time
	Elapsed time.Duration
}

// Degraded reports whether any collaborator failed during the cycle.
func (s Sample) Degraded() bool {
	return len(s.Errors) > 0
}
