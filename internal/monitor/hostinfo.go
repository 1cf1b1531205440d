package monitor

import (
	"context"
	"time"

	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
)

// HostInfoSource describes the local machine for the header.
type HostInfoSource interface {
	HostInfo(ctx context.Context) (HostInfo, error)
}

// GopsutilHostInfo reads host details and load averages through gopsutil.
type GopsutilHostInfo struct{}

// HostInfo returns whatever could be read. On error the fields that failed
// are left blank.
func (GopsutilHostInfo) HostInfo(ctx context.Context) (HostInfo, error) {
	var info HostInfo

	hi, err := host.InfoWithContext(ctx)
	if err != nil {
		return info, errors.Wrap(err, "Cannot read host info")
	}
	info.Hostname = hi.Hostname
	info.Platform = hi.Platform
	info.Kernel = hi.KernelVersion
	info.Uptime = time.Duration(hi.Uptime) * time.Second

	avg, err := load.AvgWithContext(ctx)
	if err != nil {
		return info, errors.Wrap(err, "Cannot read load averages")
	}
	info.Load1 = avg.Load1
	info.Load5 = avg.Load5
	info.Load15 = avg.Load15

	return info, nil
}
