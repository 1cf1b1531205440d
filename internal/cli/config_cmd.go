package cli

import (
	"fmt"
	"io"

	"github.com/rileyhilliard/sysmon/internal/config"
	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// configCmd prints the configuration the dashboard would run with
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration sysmon would run with, after merging the config
file, SYSMON_* environment variables and defaults.

Examples:
  sysmon config
  SYSMON_INTERVAL=2s sysmon config
  sysmon config --config ./sysmon.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return configCommand(cmd.OutOrStdout(), cfgFile)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

// effectiveConfig is Config with durations spelled out for humans.
type effectiveConfig struct {
	Interval    string               `yaml:"interval"`
	Pacing      string               `yaml:"pacing"`
	Source      string               `yaml:"source"`
	ProcRoot    string               `yaml:"proc_root"`
	ListTimeout string               `yaml:"list_timeout"`
	Monitor     config.MonitorConfig `yaml:"monitor"`
}

// configCommand writes the effective config as YAML, preceded by a comment
// naming the file it came from.
func configCommand(w io.Writer, explicit string) error {
	path, err := config.Find(explicit)
	if err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(effectiveConfig{
		Interval:    cfg.Interval.String(),
		Pacing:      cfg.Pacing,
		Source:      cfg.Source,
		ProcRoot:    cfg.ProcRoot,
		ListTimeout: cfg.ListTimeout.String(),
		Monitor:     cfg.Monitor,
	})
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, "Couldn't encode config", "")
	}

	source := path
	if source == "" {
		source = "defaults and environment"
	}
	fmt.Fprintf(w, "# source: %s\n", source)
	_, err = w.Write(out)
	return err
}
