package procs

import (
	"strings"
	"testing"

	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRow(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    Process
		wantErr bool
	}{
		{
			name: "typical row",
			line: "    1 root       0  19  0.0  0.1 systemd",
			want: Process{PID: 1, User: "root", Nice: 0, Priority: 19, CPUPercent: 0.0, MemPercent: 0.1, Command: "systemd"},
		},
		{
			name: "niced busy process",
			line: "48213 alice     10   9 97.5  3.2 ffmpeg",
			want: Process{PID: 48213, User: "alice", Nice: 10, Priority: 9, CPUPercent: 97.5, MemPercent: 3.2, Command: "ffmpeg"},
		},
		{
			name: "negative nice",
			line: "900 root -20 39 0.0 0.0 kworker/0:0H",
			want: Process{PID: 900, User: "root", Nice: -20, Priority: 39, Command: "kworker/0:0H"},
		},
		{
			name: "command with spaces",
			line: "2201 bob 0 19 12.0 4.0 Web Content",
			want: Process{PID: 2201, User: "bob", Nice: 0, Priority: 19, CPUPercent: 12.0, MemPercent: 4.0, Command: "Web Content"},
		},
		{
			name: "tabs between columns",
			line: "7\tdaemon\t0\t19\t1.5\t0.2\tcron",
			want: Process{PID: 7, User: "daemon", Nice: 0, Priority: 19, CPUPercent: 1.5, MemPercent: 0.2, Command: "cron"},
		},
		{
			name:    "header line",
			line:    "  PID USER      NI PRI %CPU %MEM COMMAND",
			wantErr: true,
		},
		{
			name:    "realtime nice column",
			line:    "  15 root       -  139  0.0  0.0 migration/0",
			wantErr: true,
		},
		{
			name:    "missing command",
			line:    "1 root 0 19 0.0 0.1",
			wantErr: true,
		},
		{
			name:    "empty",
			line:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRow(tt.line)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrMalformedRecord))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRow_Truncates(t *testing.T) {
	user := strings.Repeat("u", 40)
	cmd := strings.Repeat("c", 300)

	got, err := ParseRow("42 " + user + " 0 19 1.0 1.0 " + cmd)
	require.NoError(t, err)
	assert.Len(t, got.User, MaxUserLen)
	assert.Len(t, got.Command, MaxCommandLen)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab", truncate("abc", 2))
	assert.Equal(t, "héé", truncate("hééllo", 3))
	assert.Equal(t, "", truncate("abc", 0))
}

func TestTableCommands(t *testing.T) {
	table := Table{{Command: "bash"}, {Command: "vim"}}
	assert.Equal(t, []string{"bash", "vim"}, table.Commands())
	assert.Empty(t, Table{}.Commands())
}
