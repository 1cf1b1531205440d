package monitor

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/sysmon/internal/config"
	"github.com/rileyhilliard/sysmon/internal/logger"
)

// Screen lines that are not process rows: header, gap, two gauges, gap,
// filter line, table header and footer.
const chromeLines = 8

// defaultHeight is assumed until the first WindowSizeMsg.
const defaultHeight = 24

// Model is the Bubble Tea model for the dashboard.
type Model struct {
	collector  *Collector
	interval   time.Duration
	pacing     string
	thresholds config.MonitorThresholds
	log        logger.Logger

	state MonitorState
	view  View
	phase Phase

	cpuPercent float64
	memPercent float64
	host       HostInfo
	degraded   int
	lastUpdate time.Time
	cycles     int

	// collecting is set while a cycle is in flight; pending when a tick
	// arrived during filter entry and the cycle was put off.
	collecting bool
	pending    bool

	keys      KeyMap
	help      help.Model
	filter    textinput.Model
	filtering bool
	showHelp  bool

	width  int
	height int
}

// tickMsg signals that the next cycle is due.
type tickMsg time.Time

// sampleMsg carries the result of one cycle.
type sampleMsg Sample

// NewModel creates a dashboard model. The first cycle starts from Init.
func NewModel(collector *Collector, cfg *config.Config, log logger.Logger) Model {
	if log == nil {
		log = logger.Noop()
	}

	ti := textinput.New()
	ti.Prompt = "Filter: "
	ti.Placeholder = "command substring"
	ti.CharLimit = MaxSearchLen

	m := Model{
		collector:  collector,
		interval:   cfg.Interval,
		pacing:     cfg.Pacing,
		thresholds: cfg.Monitor.Thresholds,
		log:        log,
		phase:      Running,
		collecting: true,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		filter:     ti,
	}
	m.recompute()
	return m
}

// Init runs the first cycle immediately.
func (m Model) Init() tea.Cmd {
	return m.collectCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.phase == Terminated {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		if _, cmd := m.HandleKeyMsg(msg); cmd != nil {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.filter.Width = max(msg.Width-len(m.filter.Prompt)-2, 1)
		m.recompute()

	case tickMsg:
		if m.filtering {
			m.pending = true
			return m, nil
		}
		if m.collecting {
			return m, nil
		}
		m.collecting = true
		return m, m.collectCmd()

	case sampleMsg:
		m.applySample(Sample(msg))
		return m, m.tickCmd(m.nextDelay(msg.Elapsed))
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.phase == Terminated {
		return ""
	}
	base := m.renderDashboard()
	if m.showHelp {
		return m.renderHelpOverlay(base)
	}
	return base
}

// updateFilter feeds keys to the filter line. Enter applies the text, Esc
// keeps the previous term. Either way a cycle put off while editing runs now.
func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == KeyQuitAlt:
		m.phase = Terminated
		return m, tea.Quit

	case key.Matches(msg, m.keys.Submit):
		m.state.View = ApplyFilter(m.state.View, m.filter.Value())
		m.recompute()
		return m, m.stopFilter()

	case key.Matches(msg, m.keys.Cancel):
		return m, m.stopFilter()
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	return m, cmd
}

// startFilter opens an empty filter line.
func (m *Model) startFilter() tea.Cmd {
	m.filtering = true
	m.filter.Reset()
	return m.filter.Focus()
}

// stopFilter closes the filter line and resumes cycling.
func (m *Model) stopFilter() tea.Cmd {
	m.filtering = false
	m.filter.Blur()
	m.filter.Reset()

	if !m.pending || m.collecting {
		return nil
	}
	m.pending = false
	m.collecting = true
	return m.collectCmd()
}

// applySample stores a finished cycle and recomputes the view.
func (m *Model) applySample(s Sample) {
	m.collecting = false
	m.cycles++

	m.state.Sampler = s.State
	m.state.Table = s.Table
	m.cpuPercent = s.CPUPercent
	m.memPercent = s.MemPercent
	m.host = s.Host
	m.degraded = len(s.Errors)
	m.lastUpdate = s.Time

	if s.Degraded() {
		m.log.Debug("cycle %d degraded: %d collaborator(s) failed", m.cycles, len(s.Errors))
	}
	m.recompute()
}

// recompute derives the visible window and writes back the clamped offset.
func (m *Model) recompute() {
	m.view = ComputeView(m.state.Table, m.state.View.SearchTerm, m.state.View.ScrollOffset, m.availableRows())
	m.state.View.ScrollOffset = m.view.Offset
}

// availableRows is how many process rows fit on screen.
func (m Model) availableRows() int {
	h := m.height
	if h <= 0 {
		h = defaultHeight
	}
	return max(0, h-chromeLines)
}

// nextDelay is how long to wait before the next cycle.
func (m Model) nextDelay(elapsed time.Duration) time.Duration {
	if m.pacing == config.PacingFixed {
		return m.interval
	}
	return max(m.interval-elapsed, 0)
}

// tickCmd returns a command that sends a tick after d.
func (m Model) tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// collectCmd runs one cycle off the update goroutine. The sampler state is
// copied in and comes back on the sampleMsg.
func (m Model) collectCmd() tea.Cmd {
	collector := m.collector
	prev := m.state.Sampler
	return func() tea.Msg {
		return sampleMsg(collector.Collect(context.Background(), prev))
	}
}

// State returns a copy of the loop state.
func (m Model) State() MonitorState {
	return m.state
}

// CurrentView returns the window on screen.
func (m Model) CurrentView() View {
	return m.view
}

// Phase returns the lifecycle phase.
func (m Model) Phase() Phase {
	return m.phase
}

// Filtering reports whether the filter line is being edited.
func (m Model) Filtering() bool {
	return m.filtering
}
