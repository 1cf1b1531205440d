package procs

import (
	"context"
	"io"
)

// Rows is an open stream of process rows.
//
// Next returns io.EOF after the last row. A row that cannot be parsed is
// reported with an errors.ErrMalformedRecord error and the stream stays
// usable. Any other error ends the stream. Close must be called on every
// path and releases whatever backs the stream.
type Rows interface {
	Next() (Process, error)
	Close() error
}

// Lister opens process row streams ordered by descending CPU usage.
type Lister interface {
	Open(ctx context.Context) (Rows, error)
}

// sliceRows serves rows from memory.
type sliceRows struct {
	procs []Process
	pos   int
}

func newSliceRows(procs []Process) *sliceRows {
	return &sliceRows{procs: procs}
}

func (r *sliceRows) Next() (Process, error) {
	if r.pos >= len(r.procs) {
		return Process{}, io.EOF
	}
	p := r.procs[r.pos]
	r.pos++
	return p, nil
}

func (r *sliceRows) Close() error {
	r.procs = nil
	return nil
}
