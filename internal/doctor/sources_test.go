package doctor

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/rileyhilliard/sysmon/internal/config"
	"github.com/rileyhilliard/sysmon/internal/procs"
	"github.com/rileyhilliard/sysmon/internal/sampler"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRows struct {
	procs []procs.Process
	err   error
}

func (r *fakeRows) Next() (procs.Process, error) {
	if len(r.procs) == 0 {
		if r.err != nil {
			return procs.Process{}, r.err
		}
		return procs.Process{}, io.EOF
	}
	p := r.procs[0]
	r.procs = r.procs[1:]
	return p, nil
}

func (r *fakeRows) Close() error { return nil }

type fakeLister struct {
	procs   []procs.Process
	err     error
	openErr error
}

func (l *fakeLister) Open(ctx context.Context) (procs.Rows, error) {
	if l.openErr != nil {
		return nil, l.openErr
	}
	return &fakeRows{procs: append([]procs.Process(nil), l.procs...), err: l.err}, nil
}

func procFs(t *testing.T, stat, meminfo string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/proc/stat", []byte(stat), 0o444))
	require.NoError(t, afero.WriteFile(fs, "/proc/meminfo", []byte(meminfo), 0o444))
	return fs
}

func TestCounterCheck_ProcSource(t *testing.T) {
	fs := procFs(t,
		"cpu  300 0 100 600 0 0 0 0 0 0\n",
		"MemTotal: 1000 kB\nMemFree: 250 kB\nBuffers: 0 kB\nCached: 0 kB\n")

	c := &CounterCheck{Label: "procfs", Source: sampler.NewProcSource(fs, "/proc")}
	r := c.Run()

	assert.Equal(t, StatusPass, r.Status)
	assert.Equal(t, "counters_procfs", r.Name)
	assert.Contains(t, r.Message, "cpu 40.0%")
	assert.Contains(t, r.Message, "memory 75.0%")
}

func TestCounterCheck_Unreadable(t *testing.T) {
	c := &CounterCheck{Label: "procfs", Source: sampler.NewProcSource(afero.NewMemMapFs(), "/proc")}
	r := c.Run()

	assert.Equal(t, StatusFail, r.Status)
	assert.Contains(t, r.Message, "CPU counters")
}

func TestCounterCheck_BadMeminfo(t *testing.T) {
	fs := procFs(t, "cpu  1 2 3 4\n", "MemFree: 250 kB\n")

	r := (&CounterCheck{Label: "procfs", Source: sampler.NewProcSource(fs, "/proc")}).Run()
	assert.Equal(t, StatusFail, r.Status)
	assert.Contains(t, r.Message, "Memory counters")
}

func TestListingCheck(t *testing.T) {
	rows := []procs.Process{
		{PID: 10, User: "root", Command: "busy"},
		{PID: 11, User: "root", Command: "idle"},
	}

	tests := []struct {
		name   string
		lister *fakeLister
		want   CheckStatus
		msg    string
	}{
		{"complete", &fakeLister{procs: rows}, StatusPass, `2 processes, busiest "busy"`},
		{"partial", &fakeLister{procs: rows, err: assert.AnError}, StatusWarn, "incomplete: 2 processes"},
		{"open fails", &fakeLister{openErr: assert.AnError}, StatusFail, "failed"},
		{"empty", &fakeLister{}, StatusFail, "failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := (&ListingCheck{Label: "ps", Lister: tt.lister, Timeout: time.Second}).Run()
			assert.Equal(t, tt.want, r.Status)
			assert.Contains(t, r.Message, tt.msg)
			if tt.want != StatusPass {
				assert.NotEmpty(t, r.Suggestion)
			}
		})
	}
}

func TestNewSourceChecks(t *testing.T) {
	checks := NewSourceChecks(config.DefaultConfig(), afero.NewMemMapFs())

	names := []string{}
	for _, c := range checks {
		assert.Equal(t, CategorySources, c.Category())
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"counters_procfs", "listing_ps", "counters_gopsutil", "listing_gopsutil"}, names)
}

func TestTerminalCheck(t *testing.T) {
	assert.Equal(t, StatusPass, (&TerminalCheck{IsTerminal: true}).Run().Status)

	r := (&TerminalCheck{}).Run()
	assert.Equal(t, StatusWarn, r.Status)
	assert.Equal(t, CategoryTerminal, (&TerminalCheck{}).Category())
}
