package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the default config file name.
	ConfigFileName = ".sysmon.yaml"
	// GlobalConfigDir is the directory for global config.
	GlobalConfigDir = ".config/sysmon"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
	// EnvPrefix prefixes environment overrides, e.g. SYSMON_INTERVAL.
	EnvPrefix = "SYSMON"
)

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .sysmon.yaml in current directory
// 3. ~/.config/sysmon/config.yaml
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	if cwd, err := os.Getwd(); err == nil {
		local := filepath.Join(cwd, ConfigFileName)
		if _, err := os.Stat(local); err == nil {
			return local, nil
		}
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		global := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(global); err == nil {
			return global, nil
		}
	}

	return "", nil
}

// Load reads config from path, merged over defaults and environment
// overrides. An empty path yields defaults plus environment.
func Load(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if os.IsNotExist(err) {
				return nil, errors.WrapWithCode(err, errors.ErrConfig,
					"Config file not found",
					"Create "+ConfigFileName+" or point --config at an existing file")
			}
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to read config file",
				"Check the file exists and is valid YAML")
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+displayPath(path))
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault finds and loads the config. With no file present it returns
// defaults (with environment overrides applied).
func LoadOrDefault(explicit string) (*Config, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// newViper returns a viper instance with every known key defaulted, so that
// AutomaticEnv can see each of them during Unmarshal.
func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("interval", d.Interval.String())
	v.SetDefault("pacing", d.Pacing)
	v.SetDefault("source", d.Source)
	v.SetDefault("proc_root", d.ProcRoot)
	v.SetDefault("list_timeout", d.ListTimeout.String())
	v.SetDefault("monitor.thresholds.cpu.warning", d.Monitor.Thresholds.CPU.Warning)
	v.SetDefault("monitor.thresholds.cpu.critical", d.Monitor.Thresholds.CPU.Critical)
	v.SetDefault("monitor.thresholds.ram.warning", d.Monitor.Thresholds.RAM.Warning)
	v.SetDefault("monitor.thresholds.ram.critical", d.Monitor.Thresholds.RAM.Critical)
}

func displayPath(path string) string {
	if path == "" {
		return "the environment"
	}
	return path
}
