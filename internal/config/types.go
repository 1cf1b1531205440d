package config

import (
	"runtime"
	"time"
)

// Source names accepted in the config file.
const (
	// SourceProcfs reads counters from /proc and lists processes with ps.
	SourceProcfs = "procfs"
	// SourceGopsutil uses gopsutil for counters and the process list.
	SourceGopsutil = "gopsutil"
)

// Pacing modes for the refresh loop.
const (
	// PacingCompensated sleeps only what is left of the interval after a cycle.
	PacingCompensated = "compensated"
	// PacingFixed sleeps the full interval after every cycle.
	PacingFixed = "fixed"
)

// MinInterval is the shortest refresh interval accepted.
const MinInterval = 200 * time.Millisecond

// Config represents the .sysmon.yaml configuration file.
type Config struct {
	// Interval is the target period between refresh cycles.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// Pacing is "compensated" or "fixed".
	Pacing string `yaml:"pacing" mapstructure:"pacing"`

	// Source selects the counters and process-listing backend.
	Source string `yaml:"source" mapstructure:"source"`

	// ProcRoot is where procfs is mounted, for the procfs source.
	ProcRoot string `yaml:"proc_root" mapstructure:"proc_root"`

	// ListTimeout bounds a single process listing.
	ListTimeout time.Duration `yaml:"list_timeout" mapstructure:"list_timeout"`

	Monitor MonitorConfig `yaml:"monitor" mapstructure:"monitor"`
}

// MonitorConfig holds dashboard presentation settings.
type MonitorConfig struct {
	Thresholds MonitorThresholds `yaml:"thresholds" mapstructure:"thresholds"`
}

// MonitorThresholds sets bar coloring per metric.
type MonitorThresholds struct {
	CPU ThresholdValues `yaml:"cpu" mapstructure:"cpu"`
	RAM ThresholdValues `yaml:"ram" mapstructure:"ram"`
}

// ThresholdValues are the percentages at which a bar turns yellow and red.
type ThresholdValues struct {
	Warning  int `yaml:"warning" mapstructure:"warning"`
	Critical int `yaml:"critical" mapstructure:"critical"`
}

// DefaultSource returns procfs on Linux and gopsutil everywhere else.
func DefaultSource() string {
	if runtime.GOOS == "linux" {
		return SourceProcfs
	}
	return SourceGopsutil
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Interval:    time.Second,
		Pacing:      PacingCompensated,
		Source:      DefaultSource(),
		ProcRoot:    "/proc",
		ListTimeout: 5 * time.Second,
		Monitor: MonitorConfig{
			Thresholds: MonitorThresholds{
				CPU: ThresholdValues{Warning: 70, Critical: 90},
				RAM: ThresholdValues{Warning: 70, Critical: 90},
			},
		},
	}
}
