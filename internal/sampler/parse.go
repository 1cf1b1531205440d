package sampler

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rileyhilliard/sysmon/internal/errors"
)

// ParseCPUCounters reads the first aggregate "cpu" line of /proc/stat.
// Only user, nice, system and idle are used; trailing fields are ignored.
func ParseCPUCounters(r io.Reader) (CPUCounters, error) {
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := scanner.Text()
		fields := strings.Fields(line)
		if len(fields) == 0 || fields[0] != "cpu" {
			continue
		}
		if len(fields) < 5 {
			return CPUCounters{}, errors.Malformed(line, fmt.Errorf("need 4 counters, got %d", len(fields)-1))
		}

		var vals [4]uint64
		for i := range vals {
			v, err := strconv.ParseUint(fields[i+1], 10, 64)
			if err != nil {
				return CPUCounters{}, errors.Malformed(line, fmt.Errorf("cpu field %d: %w", i+1, err))
			}
			vals[i] = v
		}
		return CPUCounters{User: vals[0], Nice: vals[1], System: vals[2], Idle: vals[3]}, nil
	}

	if err := scanner.Err(); err != nil {
		return CPUCounters{}, errors.Wrap(err, "error scanning /proc/stat")
	}
	return CPUCounters{}, errors.New(errors.ErrDataUnavailable, "no aggregate cpu line in /proc/stat", "")
}

// meminfo field bits, for knowing when all four have been seen.
const (
	seenTotal = 1 << iota
	seenFree
	seenBuffers
	seenCached

	seenAll = seenTotal | seenFree | seenBuffers | seenCached
)

// ParseMemInfo reads MemTotal, MemFree, Buffers and Cached from /proc/meminfo
// output. Each label fills its own field. Scanning stops once all four have
// been found. A missing MemTotal is an error; the others default to 0.
func ParseMemInfo(r io.Reader) (MemInfo, error) {
	var info MemInfo
	seen := 0
	scanner := bufio.NewScanner(r)

	for seen != seenAll && scanner.Scan() {
		parts := strings.Fields(scanner.Text())
		if len(parts) < 2 {
			continue
		}

		key := strings.TrimSuffix(parts[0], ":")
		val, err := strconv.ParseUint(parts[1], 10, 64)
		if err != nil {
			continue
		}

		switch key {
		case "MemTotal":
			info.Total = val
			seen |= seenTotal
		case "MemFree":
			info.Free = val
			seen |= seenFree
		case "Buffers":
			info.Buffers = val
			seen |= seenBuffers
		case "Cached":
			info.Cached = val
			seen |= seenCached
		}
	}

	if err := scanner.Err(); err != nil {
		return MemInfo{}, errors.Wrap(err, "error scanning /proc/meminfo")
	}
	if seen&seenTotal == 0 {
		return MemInfo{}, errors.New(errors.ErrDataUnavailable, "MemTotal missing from /proc/meminfo", "")
	}
	return info, nil
}
