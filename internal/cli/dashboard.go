package cli

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/sysmon/internal/config"
	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/logger"
	"github.com/rileyhilliard/sysmon/internal/monitor"
	"github.com/rileyhilliard/sysmon/internal/procs"
	"github.com/rileyhilliard/sysmon/internal/sampler"
	"github.com/spf13/afero"
	"golang.org/x/term"
)

// dashboardOptions are the root command inputs.
type dashboardOptions struct {
	ConfigPath string
	Interval   time.Duration
	Source     string
}

// isTerminal reports whether f is a terminal. Replaced in tests.
var isTerminal = func(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// dashboardCommand loads config and runs the dashboard until quit.
func dashboardCommand(opts dashboardOptions) error {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	if !isTerminal(os.Stdout) {
		return errors.New(errors.ErrExec,
			"sysmon needs an interactive terminal",
			"Run it directly in a terminal, not through a pipe or redirect.")
	}

	restore, err := logger.RedirectForTUI()
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrExec,
			"Couldn't open the debug log",
			"Unset "+logger.DebugEnv+" or point "+logger.LogFileEnv+" at a writable path.")
	}
	defer restore()

	log := logger.NewEnvLogger("[monitor]")
	log.Debug("starting: interval=%s pacing=%s source=%s", cfg.Interval, cfg.Pacing, cfg.Source)

	collector := buildCollector(cfg, afero.NewOsFs())
	model := monitor.NewModel(collector, cfg, log)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrExec, "Dashboard stopped unexpectedly", "")
	}
	return nil
}

// resolveConfig loads the config and applies flag overrides.
func resolveConfig(opts dashboardOptions) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	if opts.Interval != 0 {
		cfg.Interval = opts.Interval
	}
	if opts.Source != "" {
		cfg.Source = opts.Source
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildCollector wires the counter source and process lister chosen by
// cfg.Source. procfs is read from fs.
func buildCollector(cfg *config.Config, fs afero.Fs) *monitor.Collector {
	var (
		source sampler.Source
		lister procs.Lister
	)

	switch cfg.Source {
	case config.SourceGopsutil:
		source = sampler.NewGopsutilSource()
		lister = procs.NewGopsutilLister()
	default:
		source = sampler.NewProcSource(fs, cfg.ProcRoot)
		lister = procs.NewPSLister()
	}

	provider := procs.NewProvider(lister, cfg.ListTimeout, logger.NewEnvLogger("[procs]"))
	return monitor.NewCollector(source, provider, monitor.GopsutilHostInfo{}, logger.NewEnvLogger("[sampler]"))
}
