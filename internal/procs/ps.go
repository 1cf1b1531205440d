package procs

import (
	"bufio"
	"context"
	"io"
	"os/exec"
	"strings"

	"github.com/rileyhilliard/sysmon/internal/errors"
)

// DefaultPSArgs asks ps for every process, highest CPU first.
var DefaultPSArgs = []string{"-eo", "pid,user,ni,pri,pcpu,pmem,comm", "--sort=-%cpu"}

// PSLister lists processes by running ps. The first output line is a header
// and is discarded.
type PSLister struct {
	// Command is the executable to run. Tests point it at a stand-in.
	Command string
	Args    []string
}

// NewPSLister returns a lister running `ps` with DefaultPSArgs.
func NewPSLister() *PSLister {
	return &PSLister{Command: "ps", Args: DefaultPSArgs}
}

// Open starts the child and returns a stream over its stdout. The child is
// killed if ctx ends or the stream is closed before its output is drained.
func (l *PSLister) Open(ctx context.Context) (Rows, error) {
	ctx, cancel := context.WithCancel(ctx)

	cmd := exec.CommandContext(ctx, l.Command, l.Args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		cancel()
		return nil, errors.WrapWithCode(err, errors.ErrCollaboratorUnavailable,
			"Cannot attach to "+l.Command+" output", "")
	}
	if err := cmd.Start(); err != nil {
		cancel()
		return nil, errors.WrapWithCode(err, errors.ErrCollaboratorUnavailable,
			"Cannot start "+l.Command, "Install procps or set source: gopsutil in the config")
	}

	// A killed ps may leave descendants holding the write end open, so the
	// read end is closed as soon as ctx ends to unblock a pending Next.
	go func() {
		<-ctx.Done()
		_ = stdout.Close()
	}()

	return &psRows{
		ctx:     ctx,
		cancel:  cancel,
		cmd:     cmd,
		scanner: bufio.NewScanner(stdout),
	}, nil
}

// psRows streams parsed lines from a running ps.
type psRows struct {
	ctx     context.Context
	cancel  context.CancelFunc
	cmd     *exec.Cmd
	scanner *bufio.Scanner

	headerSeen bool
	drained    bool
	closed     bool
}

func (r *psRows) Next() (Process, error) {
	if r.drained || r.closed {
		return Process{}, io.EOF
	}

	for r.scanner.Scan() {
		line := r.scanner.Text()
		if !r.headerSeen {
			r.headerSeen = true
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		return ParseRow(line)
	}

	r.drained = true
	if err := r.ctx.Err(); err != nil {
		return Process{}, errors.Wrap(err, "Process listing interrupted")
	}
	if err := r.scanner.Err(); err != nil {
		return Process{}, errors.Wrap(err, "Cannot read process listing")
	}
	return Process{}, io.EOF
}

// Close kills the child if its output was not fully read and waits for it.
// The exit status is only reported when the output was drained, since an
// early close kills the child on purpose.
func (r *psRows) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true

	if !r.drained {
		r.cancel()
	}
	err := r.cmd.Wait()
	r.cancel()

	if !r.drained || err == nil {
		return nil
	}
	return errors.WrapWithCode(err, errors.ErrCollaboratorUnavailable, r.cmd.Path+" exited with an error", "")
}
