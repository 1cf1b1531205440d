package procs

const (
	// MaxProcesses is the capacity of a Table. Rows past it are dropped.
	MaxProcesses = 256
	// MaxUserLen is the longest user name kept on a Process.
	MaxUserLen = 31
	// MaxCommandLen is the longest command kept on a Process.
	MaxCommandLen = 255
)

// Process is one row of the process table.
type Process struct {
	PID        int
	User       string
	Nice       int
	Priority   int
	CPUPercent float64
	MemPercent float64
	Command    string
}

// Table is one snapshot of the process table, in lister order.
type Table []Process

// Commands returns the command of every process, in order.
func (t Table) Commands() []string {
	out := make([]string, len(t))
	for i, p := range t {
		out[i] = p.Command
	}
	return out
}

// normalize applies the length limits to user and command.
func normalize(p Process) Process {
	p.User = truncate(p.User, MaxUserLen)
	p.Command = truncate(p.Command, MaxCommandLen)
	return p
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
