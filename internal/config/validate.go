package config

import (
	"fmt"

	"github.com/rileyhilliard/sysmon/internal/errors"
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Interval < MinInterval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("interval %s is too short", cfg.Interval),
			fmt.Sprintf("Minimum interval is %s", MinInterval))
	}

	switch cfg.Pacing {
	case PacingCompensated, PacingFixed:
	default:
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("pacing '%s' isn't a pacing mode", cfg.Pacing),
			fmt.Sprintf("Use '%s' or '%s'", PacingCompensated, PacingFixed))
	}

	switch cfg.Source {
	case SourceProcfs, SourceGopsutil:
	default:
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("source '%s' isn't a known backend", cfg.Source),
			fmt.Sprintf("Use '%s' or '%s'", SourceProcfs, SourceGopsutil))
	}

	if cfg.Source == SourceProcfs && cfg.ProcRoot == "" {
		return errors.New(errors.ErrConfig,
			"proc_root is empty",
			"Set proc_root to where procfs is mounted, usually /proc")
	}

	if cfg.ListTimeout <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("list_timeout must be positive (got %s)", cfg.ListTimeout),
			"Use a duration like 5s")
	}

	if err := validateThresholds("cpu", cfg.Monitor.Thresholds.CPU); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'monitor' section in your "+ConfigFileName+".")
	}
	if err := validateThresholds("ram", cfg.Monitor.Thresholds.RAM); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'monitor' section in your "+ConfigFileName+".")
	}

	return nil
}

// validateThresholds checks warning/critical percentages for one metric.
func validateThresholds(name string, thresh ThresholdValues) error {
	if thresh.Warning < 0 || thresh.Warning > 100 {
		return fmt.Errorf("monitor.thresholds.%s.warning needs to be 0-100 (got %d)", name, thresh.Warning)
	}
	if thresh.Critical < 0 || thresh.Critical > 100 {
		return fmt.Errorf("monitor.thresholds.%s.critical needs to be 0-100 (got %d)", name, thresh.Critical)
	}
	if thresh.Warning >= thresh.Critical {
		return fmt.Errorf("monitor.thresholds.%s.warning (%d%%) is higher than critical (%d%%) - should be the other way around", name, thresh.Warning, thresh.Critical)
	}
	return nil
}
