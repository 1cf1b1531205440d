// Package cli implements the sysmon command-line interface.
//
// The package is organized around Cobra commands, each delegating to a plain
// function that does the work so it can be tested without a terminal.
//
// # Command Structure
//
// The root command runs the dashboard; subcommands inspect the install:
//
//	sysmon              - Live CPU, memory and process dashboard
//	sysmon config       - Print the effective configuration as YAML
//	sysmon doctor       - Check config, counter sources and process listing
//	sysmon version      - Print version information
//
// # Flag Handling
//
// The persistent --config flag points at a config file and is available to
// every subcommand. The root command also takes --interval and --source,
// which override the file and environment for a single run.
//
// # Startup
//
// Config problems are reported before the terminal is taken over. The
// dashboard refuses to start when stdout is not a terminal, and while it runs
// the standard logger is redirected (see logger.RedirectForTUI).
package cli
