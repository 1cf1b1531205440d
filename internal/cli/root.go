package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// Global and root-only flags
var (
	cfgFile      string
	intervalFlag time.Duration
	sourceFlag   string
)

// rootCmd runs the dashboard when called without a subcommand
var rootCmd = &cobra.Command{
	Use:   "sysmon",
	Short: "Live CPU, memory and process dashboard",
	Long: `sysmon samples host-wide CPU and memory usage and the busiest processes
once per interval and shows them as live gauges and a scrollable table.

Keyboard shortcuts:
  q / Ctrl+C  Quit
  /           Filter processes by command (Enter applies, Esc cancels)
  up/k        Scroll up
  down/j      Scroll down
  ?           Show help

Examples:
  sysmon
  sysmon --interval 2s
  sysmon --source gopsutil
  sysmon --config ./sysmon.yaml`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardCommand(dashboardOptions{
			ConfigPath: cfgFile,
			Interval:   intervalFlag,
			Source:     sourceFlag,
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./.sysmon.yaml, then ~/.config/sysmon/config.yaml)")

	rootCmd.Flags().DurationVar(&intervalFlag, "interval", 0, "refresh interval (e.g., 500ms, 2s)")
	rootCmd.Flags().StringVar(&sourceFlag, "source", "", "counters and process backend: procfs or gopsutil")
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
