package monitor

import (
	"fmt"
	"testing"

	"github.com/rileyhilliard/sysmon/internal/procs"
	"github.com/stretchr/testify/assert"
)

func tableOf(commands ...string) procs.Table {
	t := make(procs.Table, len(commands))
	for i, c := range commands {
		t[i] = procs.Process{PID: i + 1, User: "root", Priority: 19, Command: c}
	}
	return t
}

func numberedTable(n int) procs.Table {
	commands := make([]string, n)
	for i := range commands {
		commands[i] = fmt.Sprintf("proc-%02d", i)
	}
	return tableOf(commands...)
}

func TestComputeView_Filter(t *testing.T) {
	list := tableOf("bash", "vim-session", "bashrc-loader")

	v := ComputeView(list, "bash", 0, 10)

	assert.Equal(t, []string{"bash", "bashrc-loader"}, procs.Table(v.Visible).Commands())
	assert.Equal(t, 2, v.Matched)
	assert.Equal(t, 0, v.Offset)
}

func TestComputeView(t *testing.T) {
	list := numberedTable(10)

	tests := []struct {
		name        string
		term        string
		offset      int
		rows        int
		wantFirst   string
		wantLen     int
		wantMatched int
		wantOffset  int
	}{
		{"empty term matches all", "", 0, 5, "proc-00", 5, 10, 0},
		{"offset in range", "", 3, 5, "proc-03", 5, 10, 3},
		{"offset clamped to last page", "", 9, 5, "proc-05", 5, 10, 5},
		{"negative offset clamped to zero", "", -4, 5, "proc-00", 5, 10, 0},
		{"viewport larger than list", "", 2, 50, "proc-00", 10, 10, 0},
		{"zero rows", "", 3, 0, "", 0, 10, 3},
		{"negative rows treated as zero", "", 0, -3, "", 0, 10, 0},
		{"no match", "nginx", 2, 5, "", 0, 0, 0},
		{"case sensitive", "PROC", 0, 5, "", 0, 0, 0},
		{"filtered and scrolled", "proc-0", 4, 3, "proc-04", 3, 10, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ComputeView(list, tt.term, tt.offset, tt.rows)
			assert.Len(t, v.Visible, tt.wantLen)
			assert.Equal(t, tt.wantMatched, v.Matched)
			assert.Equal(t, tt.wantOffset, v.Offset)
			if tt.wantFirst != "" {
				assert.Equal(t, tt.wantFirst, v.Visible[0].Command)
			}
			assert.LessOrEqual(t, v.Offset, max(0, v.Matched-max(tt.rows, 0)))
		})
	}
}

func TestComputeView_Idempotent(t *testing.T) {
	list := tableOf("bash", "vim-session", "bashrc-loader", "sshd", "bash")

	first := ComputeView(list, "bash", 1, 2)
	second := ComputeView(list, "bash", 1, 2)

	assert.Equal(t, first, second)
}

func TestComputeView_DoesNotMutateOrAlias(t *testing.T) {
	list := tableOf("a", "b", "c")
	orig := append(procs.Table(nil), list...)

	v := ComputeView(list, "", 0, 3)
	v.Visible[0].Command = "changed"

	assert.Equal(t, orig, list)

	again := ComputeView(list, "", 0, 3)
	assert.Equal(t, "a", again.Visible[0].Command)
}

func TestComputeView_EmptyList(t *testing.T) {
	v := ComputeView(nil, "", 5, 10)
	assert.Empty(t, v.Visible)
	assert.Equal(t, 0, v.Matched)
	assert.Equal(t, 0, v.Offset)
}
