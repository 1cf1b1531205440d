package monitor

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/sysmon/internal/procs"
)

const (
	defaultWidth  = 80
	gaugeLabelW   = 5
	usageBarWidth = 10
	userColumnW   = 12
	minCommandW   = 10
)

// renderDashboard renders the complete dashboard view.
func (m Model) renderDashboard() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	b.WriteString(m.renderGauges())
	b.WriteString("\n\n")

	b.WriteString(m.renderStatusLine())
	b.WriteString("\n")

	b.WriteString(m.renderTable())
	b.WriteString("\n")

	b.WriteString(m.renderFooter())

	return b.String()
}

func (m Model) renderWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return m.width
}

// renderHeader renders the title and host summary.
func (m Model) renderHeader() string {
	parts := []string{}
	if m.host.Hostname != "" {
		parts = append(parts, m.host.Hostname)
	}
	if m.host.Kernel != "" {
		parts = append(parts, strings.TrimSpace(m.host.Platform+" "+m.host.Kernel))
	}
	if m.host.Uptime > 0 {
		parts = append(parts, "up "+formatUptime(m.host.Uptime))
	}
	if m.host.Hostname != "" {
		parts = append(parts, fmt.Sprintf("load %.2f %.2f %.2f", m.host.Load1, m.host.Load5, m.host.Load15))
	}
	if m.lastUpdate.IsZero() {
		parts = append(parts, "sampling...")
	}

	stats := ""
	if len(parts) > 0 {
		stats = LabelStyle.Render(" | " + strings.Join(parts, " | "))
	}
	return HeaderStyle.Render(TitleStyle.Render("sysmon") + stats)
}

// renderGauges renders the CPU and memory bars.
func (m Model) renderGauges() string {
	barWidth := max(10, m.renderWidth()-gaugeLabelW-10)
	cpu := m.thresholds.CPU
	ram := m.thresholds.RAM

	return lipgloss.JoinVertical(lipgloss.Left,
		gaugeLine("CPU", m.cpuPercent, barWidth, cpu.Warning, cpu.Critical),
		gaugeLine("MEM", m.memPercent, barWidth, ram.Warning, ram.Critical),
	)
}

func gaugeLine(label string, percent float64, width, warning, critical int) string {
	value := MetricStyleWithThresholds(percent, warning, critical).Render(fmt.Sprintf("%5.1f%%", percent))
	return LabelStyle.Render(fmt.Sprintf("%-*s", gaugeLabelW, label)) +
		ProgressBarWithThresholds(width, percent, warning, critical) + " " + value
}

// renderStatusLine renders the filter editor, the active filter or the
// process count.
func (m Model) renderStatusLine() string {
	if m.filtering {
		return m.filter.View()
	}

	total := len(m.state.Table)
	var line string
	if term := m.state.View.SearchTerm; term != "" {
		line = FilterLabelStyle.Render("Filter: ") + ValueStyle.Render(term) +
			MutedStyle.Render(fmt.Sprintf(" (%d of %d)", m.view.Matched, total))
	} else {
		line = LabelStyle.Render(fmt.Sprintf("Processes: %d", total))
	}

	if m.view.Matched > len(m.view.Visible) && len(m.view.Visible) > 0 {
		first := m.view.Offset + 1
		last := m.view.Offset + len(m.view.Visible)
		line += MutedStyle.Render(fmt.Sprintf("  rows %d-%d", first, last))
	}
	return line
}

// renderTable renders the column header and the visible rows.
func (m Model) renderTable() string {
	cmdWidth := max(minCommandW, m.renderWidth()-rowPrefixWidth()-usageBarWidth-2)

	lines := []string{TableHeaderStyle.Render(tableHeader())}

	if len(m.view.Visible) == 0 {
		msg := "No processes"
		if m.state.View.SearchTerm != "" {
			msg = "No matching processes"
		}
		lines = append(lines, MutedStyle.Render(msg))
		return strings.Join(lines, "\n")
	}

	for _, p := range m.view.Visible {
		lines = append(lines, renderRow(p, cmdWidth))
	}
	return strings.Join(lines, "\n")
}

const rowPrefixFormat = "%7d  %-12s %4d %4d %6.1f %6.1f  "

func rowPrefixWidth() int {
	return len(fmt.Sprintf(rowPrefixFormat, 0, "", 0, 0, 0.0, 0.0))
}

func tableHeader() string {
	return fmt.Sprintf("%7s  %-12s %4s %4s %6s %6s  %-*s  %s",
		"PID", "USER", "NI", "PRI", "%CPU", "%MEM", usageBarWidth, "USAGE", "COMMAND")
}

func renderRow(p procs.Process, cmdWidth int) string {
	prefix := fmt.Sprintf(rowPrefixFormat,
		p.PID, clip(p.User, userColumnW), p.Nice, p.Priority, p.CPUPercent, p.MemPercent)
	return ValueStyle.Render(prefix) + UsageBar(usageBarWidth, p.CPUPercent) + "  " +
		ValueStyle.Render(clip(p.Command, cmdWidth))
}

// renderFooter renders key hints, the refresh interval and a degraded marker.
func (m Model) renderFooter() string {
	var hints string
	if m.filtering {
		hints = m.help.ShortHelpView([]key.Binding{m.keys.Submit, m.keys.Cancel})
	} else {
		hints = m.help.View(m.keys)
	}

	parts := []string{hints, "every " + m.interval.String()}
	footer := FooterStyle.Render(strings.Join(parts, " | "))
	if m.degraded > 0 {
		footer += DegradedStyle.Render(fmt.Sprintf("⚠ degraded (%d)", m.degraded))
	}
	return footer
}

// clip cuts s to n runes.
func clip(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// formatUptime renders d as "2d 3h", "3h 12m" or "12m".
func formatUptime(d time.Duration) string {
	d = d.Truncate(time.Minute)
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}
