package procs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rileyhilliard/sysmon/internal/errors"
)

// rowFields is the number of leading whitespace-separated columns before
// the command.
const rowFields = 6

// ParseRow parses one line of `ps -eo pid,user,ni,pri,pcpu,pmem,comm`.
// The command is the rest of the line after the sixth column, so names with
// spaces survive. User and command are truncated to their limits.
func ParseRow(line string) (Process, error) {
	fields, rest := splitFields(line, rowFields)
	if len(fields) < rowFields || rest == "" {
		return Process{}, errors.Malformed(line, fmt.Errorf("need %d columns and a command", rowFields))
	}

	pid, err := strconv.Atoi(fields[0])
	if err != nil {
		return Process{}, errors.Malformed(line, fmt.Errorf("pid: %w", err))
	}
	nice, err := strconv.Atoi(fields[2])
	if err != nil {
		return Process{}, errors.Malformed(line, fmt.Errorf("nice: %w", err))
	}
	pri, err := strconv.Atoi(fields[3])
	if err != nil {
		return Process{}, errors.Malformed(line, fmt.Errorf("priority: %w", err))
	}
	cpu, err := strconv.ParseFloat(fields[4], 64)
	if err != nil {
		return Process{}, errors.Malformed(line, fmt.Errorf("cpu: %w", err))
	}
	mem, err := strconv.ParseFloat(fields[5], 64)
	if err != nil {
		return Process{}, errors.Malformed(line, fmt.Errorf("mem: %w", err))
	}

	return normalize(Process{
		PID:        pid,
		User:       fields[1],
		Nice:       nice,
		Priority:   pri,
		CPUPercent: cpu,
		MemPercent: mem,
		Command:    rest,
	}), nil
}

// splitFields splits off up to n leading fields and returns the remainder
// with surrounding whitespace trimmed.
func splitFields(line string, n int) ([]string, string) {
	fields := make([]string, 0, n)
	rest := strings.TrimSpace(line)
	for len(fields) < n && rest != "" {
		end := strings.IndexAny(rest, " \t")
		if end < 0 {
			fields = append(fields, rest)
			return fields, ""
		}
		fields = append(fields, rest[:end])
		rest = strings.TrimLeft(rest[end:], " \t")
	}
	return fields, strings.TrimSpace(rest)
}
