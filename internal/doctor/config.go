package doctor

import (
	"fmt"

	"github.com/rileyhilliard/sysmon/internal/config"
)

// ConfigFileCheck reports which config file is in effect. Having none is
// fine; defaults apply.
type ConfigFileCheck struct {
	ConfigPath string // Explicit path, or empty to search
}

func (c *ConfigFileCheck) Name() string     { return "config_file" }
func (c *ConfigFileCheck) Category() string { return CategoryConfig }

func (c *ConfigFileCheck) Run() CheckResult {
	path, err := config.Find(c.ConfigPath)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    fmt.Sprintf("Error finding config: %v", err),
			Suggestion: "Check the --config path and file permissions",
		}
	}

	if path == "" {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusPass,
			Message: "No config file, using defaults",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: "Config file: " + path,
	}
}

// ConfigValuesCheck loads and validates the effective configuration.
type ConfigValuesCheck struct {
	ConfigPath string
}

func (c *ConfigValuesCheck) Name() string     { return "config_values" }
func (c *ConfigValuesCheck) Category() string { return CategoryConfig }

func (c *ConfigValuesCheck) Run() CheckResult {
	cfg, err := config.LoadOrDefault(c.ConfigPath)
	if err == nil {
		err = config.Validate(cfg)
	}
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "Config is invalid",
			Suggestion: err.Error(),
		}
	}

	return CheckResult{
		Name:   c.Name(),
		Status: StatusPass,
		Message: fmt.Sprintf("Config valid: every %s, %s pacing, %s source",
			cfg.Interval, cfg.Pacing, cfg.Source),
	}
}

// NewConfigChecks returns the config checks for the given --config value.
func NewConfigChecks(configPath string) []Check {
	return []Check{
		&ConfigFileCheck{ConfigPath: configPath},
		&ConfigValuesCheck{ConfigPath: configPath},
	}
}
