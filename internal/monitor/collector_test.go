package monitor

import (
	"context"
	stderrors "errors"
	"io"
	"testing"
	"time"

	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/logger"
	"github.com/rileyhilliard/sysmon/internal/procs"
	"github.com/rileyhilliard/sysmon/internal/sampler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	cpu    sampler.CPUCounters
	mem    sampler.MemInfo
	cpuErr error
	memErr error
}

func (s *fakeSource) CPUCounters(context.Context) (sampler.CPUCounters, error) {
	return s.cpu, s.cpuErr
}

func (s *fakeSource) MemInfo(context.Context) (sampler.MemInfo, error) {
	return s.mem, s.memErr
}

type fakeRows struct {
	procs []procs.Process
	pos   int
}

func (r *fakeRows) Next() (procs.Process, error) {
	if r.pos >= len(r.procs) {
		return procs.Process{}, io.EOF
	}
	p := r.procs[r.pos]
	r.pos++
	return p, nil
}

func (r *fakeRows) Close() error { return nil }

type fakeLister struct {
	table procs.Table
	err   error
}

func (l *fakeLister) Open(context.Context) (procs.Rows, error) {
	if l.err != nil {
		return nil, l.err
	}
	return &fakeRows{procs: l.table}, nil
}

type fakeHost struct {
	info HostInfo
	err  error
}

func (h fakeHost) HostInfo(context.Context) (HostInfo, error) {
	return h.info, h.err
}

func newTestCollector(src *fakeSource, lister *fakeLister, host HostInfoSource) *Collector {
	return NewCollector(src, procs.NewProvider(lister, time.Second, nil), host, nil)
}

func TestCollector_Collect(t *testing.T) {
	src := &fakeSource{
		cpu: sampler.CPUCounters{User: 300, System: 100, Idle: 600},
		mem: sampler.MemInfo{Total: 1000, Free: 400, Buffers: 100, Cached: 100},
	}
	lister := &fakeLister{table: tableOf("bash", "sshd")}
	host := fakeHost{info: HostInfo{Hostname: "box", Load1: 0.5}}

	s := newTestCollector(src, lister, host).Collect(context.Background(), sampler.State{})

	assert.InDelta(t, 40.0, s.CPUPercent, 0.001)
	assert.InDelta(t, 40.0, s.MemPercent, 0.001)
	assert.Equal(t, sampler.State{PrevUser: 300, PrevSystem: 100, PrevIdle: 600}, s.State)
	assert.Equal(t, []string{"bash", "sshd"}, s.Table.Commands())
	assert.Equal(t, "box", s.Host.Hostname)
	assert.False(t, s.Degraded())
	assert.False(t, s.Time.IsZero())
}

func TestCollector_CPUFailureKeepsState(t *testing.T) {
	src := &fakeSource{
		cpuErr: errors.New(errors.ErrDataUnavailable, "no /proc/stat", ""),
		mem:    sampler.MemInfo{Total: 100, Free: 50},
	}
	prev := sampler.State{PrevUser: 10, PrevIdle: 90}
	log := logger.NewBufferLogger()
	c := NewCollector(src, procs.NewProvider(&fakeLister{table: tableOf("init")}, 0, nil), nil, log)

	s := c.Collect(context.Background(), prev)

	assert.Equal(t, 0.0, s.CPUPercent)
	assert.Equal(t, prev, s.State)
	assert.InDelta(t, 50.0, s.MemPercent, 0.001)
	require.Len(t, s.Errors, 1)
	assert.True(t, errors.IsCode(s.Errors[0], errors.ErrDataUnavailable))
	assert.True(t, log.HasLevel("debug"))
}

func TestCollector_AllCollaboratorsFail(t *testing.T) {
	src := &fakeSource{
		cpuErr: stderrors.New("cpu gone"),
		memErr: stderrors.New("mem gone"),
	}
	lister := &fakeLister{err: stderrors.New("ps: not found")}
	host := fakeHost{err: stderrors.New("no host")}

	s := newTestCollector(src, lister, host).Collect(context.Background(), sampler.State{PrevIdle: 5})

	assert.Equal(t, 0.0, s.CPUPercent)
	assert.Equal(t, 0.0, s.MemPercent)
	assert.Empty(t, s.Table)
	assert.Equal(t, sampler.State{PrevIdle: 5}, s.State)
	// Host info failures are not counted.
	assert.Len(t, s.Errors, 3)
	assert.True(t, s.Degraded())
}

func TestCollector_NoHostSource(t *testing.T) {
	src := &fakeSource{cpu: sampler.CPUCounters{Idle: 1}, mem: sampler.MemInfo{Total: 1}}
	s := newTestCollector(src, &fakeLister{table: tableOf("a")}, nil).Collect(context.Background(), sampler.State{})
	assert.Equal(t, HostInfo{}, s.Host)
}

func TestGopsutilHostInfo_LiveHost(t *testing.T) {
	info, err := GopsutilHostInfo{}.HostInfo(context.Background())
	if err != nil {
		t.Skipf("host info unavailable: %v", err)
	}
	assert.NotEmpty(t, info.Hostname)
	assert.GreaterOrEqual(t, info.Load1, 0.0)
}
