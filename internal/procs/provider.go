package procs

import (
	"context"
	stderrors "errors"
	"io"
	"time"

	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/logger"
)

// Provider takes bounded snapshots from a Lister.
type Provider struct {
	lister  Lister
	timeout time.Duration
	log     logger.Logger
}

// NewProvider creates a provider. A zero timeout leaves listing unbounded
// apart from ctx. A nil log discards messages.
func NewProvider(lister Lister, timeout time.Duration, log logger.Logger) *Provider {
	if log == nil {
		log = logger.Noop()
	}
	return &Provider{lister: lister, timeout: timeout, log: log}
}

// Snapshot reads one process table. It stops reading after MaxProcesses rows
// and skips rows that do not parse.
//
// The returned table is always usable. The error is non-nil, with code
// errors.ErrCollaboratorUnavailable, when the lister could not be opened,
// failed part way, or produced no rows; the table then holds whatever was
// read before the failure.
func (p *Provider) Snapshot(ctx context.Context) (Table, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	rows, err := p.lister.Open(ctx)
	if err != nil {
		return Table{}, errors.WrapWithCode(err, errors.ErrCollaboratorUnavailable,
			"Cannot list processes", "Check that ps is installed or set source: gopsutil")
	}

	table, skipped, readErr := drain(rows)

	if cerr := rows.Close(); cerr != nil {
		p.log.Debug("closing process stream: %v", cerr)
	}
	if skipped > 0 {
		p.log.Debug("skipped %d malformed process rows", skipped)
	}

	if readErr != nil {
		return table, errors.WrapWithCode(readErr, errors.ErrCollaboratorUnavailable,
			"Process listing failed", "")
	}
	if len(table) == 0 {
		return table, errors.New(errors.ErrCollaboratorUnavailable, "Process listing produced no rows", "")
	}
	return table, nil
}

// drain reads rows until EOF, a stream error or capacity.
func drain(rows Rows) (Table, int, error) {
	table := make(Table, 0, 64)
	skipped := 0

	for len(table) < MaxProcesses {
		proc, err := rows.Next()
		if stderrors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if errors.IsCode(err, errors.ErrMalformedRecord) {
				skipped++
				continue
			}
			return table, skipped, err
		}
		table = append(table, proc)
	}
	return table, skipped, nil
}
