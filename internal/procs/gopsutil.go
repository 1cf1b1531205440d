package procs

import (
	"context"
	"sort"

	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/shirou/gopsutil/v4/process"
)

// basePriority is what ps reports as pri for a process at nice 0.
const basePriority = 19

// GopsutilLister lists processes through gopsutil. It reads the whole table
// up front, so the stream it returns is already sorted by CPU usage.
type GopsutilLister struct{}

// NewGopsutilLister returns a gopsutil-backed lister.
func NewGopsutilLister() *GopsutilLister {
	return &GopsutilLister{}
}

// Open walks the process table. Processes that exit while being read are
// left out.
func (l *GopsutilLister) Open(ctx context.Context) (Rows, error) {
	handles, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrCollaboratorUnavailable,
			"Cannot read the process table", "")
	}

	procs := make([]Process, 0, len(handles))
	for _, h := range handles {
		if ctx.Err() != nil {
			break
		}
		p, ok := readProcess(ctx, h)
		if ok {
			procs = append(procs, p)
		}
	}

	sort.SliceStable(procs, func(i, j int) bool {
		return procs[i].CPUPercent > procs[j].CPUPercent
	})
	return newSliceRows(procs), nil
}

// readProcess collects one row. Only the name is required; the other
// columns fall back to zero values.
func readProcess(ctx context.Context, h *process.Process) (Process, bool) {
	name, err := h.NameWithContext(ctx)
	if err != nil || name == "" {
		return Process{}, false
	}

	user, _ := h.UsernameWithContext(ctx)
	nice, _ := h.NiceWithContext(ctx)
	cpu, _ := h.CPUPercentWithContext(ctx)
	mem, _ := h.MemoryPercentWithContext(ctx)

	return normalize(Process{
		PID:        int(h.Pid),
		User:       user,
		Nice:       int(nice),
		Priority:   basePriority - int(nice),
		CPUPercent: cpu,
		MemPercent: float64(mem),
		Command:    name,
	}), true
}
