package monitor

import (
	"strings"

	"github.com/rileyhilliard/sysmon/internal/procs"
)

// ComputeView filters list by a case-sensitive substring of the command and
// cuts out the window starting at offset that fits in rows lines.
//
// The offset is clamped to [0, max(0, matched-rows)]. An empty term matches
// everything and a negative rows is treated as 0. The input is not modified
// and the returned slice is freshly allocated on every call.
func ComputeView(list procs.Table, term string, offset, rows int) View {
	rows = max(rows, 0)

	matched := make([]procs.Process, 0, len(list))
	for _, p := range list {
		if term == "" || strings.Contains(p.Command, term) {
			matched = append(matched, p)
		}
	}

	offset = clampOffset(offset, len(matched), rows)
	end := min(offset+rows, len(matched))

	return View{
		Visible: matched[offset:end:end],
		Matched: len(matched),
		Offset:  offset,
	}
}

// maxOffset is the largest scroll offset that still fills the viewport.
func maxOffset(matched, rows int) int {
	return max(0, matched-rows)
}

func clampOffset(offset, matched, rows int) int {
	return min(max(offset, 0), maxOffset(matched, rows))
}
