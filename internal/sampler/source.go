package sampler

import (
	"context"
	"path/filepath"

	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/spf13/afero"
)

// Source provides counter readings. Implementations must not retain state
// between calls; delta bookkeeping belongs to the caller.
type Source interface {
	CPUCounters(ctx context.Context) (CPUCounters, error)
	MemInfo(ctx context.Context) (MemInfo, error)
}

// ProcSource reads counters from a procfs mount.
type ProcSource struct {
	fs   afero.Fs
	root string
}

// NewProcSource reads <root>/stat and <root>/meminfo from fs.
func NewProcSource(fs afero.Fs, root string) *ProcSource {
	return &ProcSource{fs: fs, root: root}
}

// NewOSProcSource reads the live procfs mounted at root.
func NewOSProcSource(root string) *ProcSource {
	return NewProcSource(afero.NewOsFs(), root)
}

// CPUCounters reads the aggregate line of <root>/stat.
func (s *ProcSource) CPUCounters(_ context.Context) (CPUCounters, error) {
	path := filepath.Join(s.root, "stat")
	f, err := s.fs.Open(path)
	if err != nil {
		return CPUCounters{}, errors.Wrap(err, "Cannot open "+path)
	}
	defer f.Close()

	return ParseCPUCounters(f)
}

// MemInfo reads <root>/meminfo.
func (s *ProcSource) MemInfo(_ context.Context) (MemInfo, error) {
	path := filepath.Join(s.root, "meminfo")
	f, err := s.fs.Open(path)
	if err != nil {
		return MemInfo{}, errors.Wrap(err, "Cannot open "+path)
	}
	defer f.Close()

	return ParseMemInfo(f)
}
