package monitor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Dashboard color palette - Gen Z Electric Synthwave
const (
	// Background colors
	ColorDarkBg    = lipgloss.Color("#0A0A0F") // Deep void
	ColorSurfaceBg = lipgloss.Color("#12121A") // Dark surface
	ColorBorder    = lipgloss.Color("#2A2A4A") // Glass border (purple tint)

	// Semantic colors for metrics - neon style
	ColorHealthy  = lipgloss.Color("#39FF14") // Neon green
	ColorWarning  = lipgloss.Color("#FFAA00") // Electric amber
	ColorCritical = lipgloss.Color("#FF0055") // Hot red-pink

	// Text colors
	ColorTextPrimary   = lipgloss.Color("#FFFFFF") // Pure white
	ColorTextSecondary = lipgloss.Color("#B4B4D0") // Lavender gray
	ColorTextMuted     = lipgloss.Color("#6B6B8D") // Purple-gray

	// Accent colors - neon pink primary, cyan secondary
	ColorAccent    = lipgloss.Color("#FF2E97") // Neon pink
	ColorAccentDim = lipgloss.Color("#BF40FF") // Neon purple
	ColorCyan      = lipgloss.Color("#00FFFF") // Neon cyan
)

// Thresholds for the host gauges when none are configured.
const (
	WarningThreshold  = 70.0
	CriticalThreshold = 90.0
)

// Thresholds for the per-process usage bars.
const (
	UsageWarningThreshold  = 30.0
	UsageCriticalThreshold = 70.0
)

// Base styles for the dashboard
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Background(ColorSurfaceBg).
			Bold(true).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	// Text styles
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	// Process table
	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorCyan).
				Bold(true)

	FilterLabelStyle = lipgloss.NewStyle().
				Foreground(ColorAccentDim).
				Bold(true)

	DegradedStyle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)
)

// MetricColor returns the appropriate color for a percentage-based metric.
// Uses threshold-based coloring: green < 70%, yellow 70-90%, red > 90%.
func MetricColor(percent float64) lipgloss.Color {
	return MetricColorWithThresholds(percent, int(WarningThreshold), int(CriticalThreshold))
}

// MetricColorWithThresholds returns the appropriate color for a percentage-based metric
// using the provided warning and critical threshold values.
func MetricColorWithThresholds(percent float64, warning, critical int) lipgloss.Color {
	switch {
	case percent >= float64(critical):
		return ColorCritical
	case percent >= float64(warning):
		return ColorWarning
	default:
		return ColorHealthy
	}
}

// MetricStyleWithThresholds returns a style with the appropriate foreground color
// using custom warning and critical thresholds.
func MetricStyleWithThresholds(percent float64, warning, critical int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(MetricColorWithThresholds(percent, warning, critical))
}

// UsageColor colors a per-process CPU share: green under 30%, yellow under
// 70%, red above.
func UsageColor(percent float64) lipgloss.Color {
	switch {
	case percent >= UsageCriticalThreshold:
		return ColorCritical
	case percent >= UsageWarningThreshold:
		return ColorWarning
	default:
		return ColorHealthy
	}
}

// ProgressBar renders a progress bar with the given width and percentage.
// Uses bracketless Gen Z style with threshold-based coloring.
func ProgressBar(width int, percent float64) string {
	return ProgressBarWithThresholds(width, percent, int(WarningThreshold), int(CriticalThreshold))
}

// ProgressBarWithThresholds renders a progress bar using custom thresholds.
func ProgressBarWithThresholds(width int, percent float64, warning, critical int) string {
	return barStyle(MetricColorWithThresholds(clampBar(percent), warning, critical)).
		Render(barCells(width, percent, "▰", "▱"))
}

// UsageBar renders the thin per-process bar in the process table.
func UsageBar(width int, percent float64) string {
	return barStyle(UsageColor(clampBar(percent))).Render(barCells(width, percent, "━", "─"))
}

func barStyle(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

// barCells builds a width-wide bar with the filled share of percent.
func barCells(width int, percent float64, full, empty string) string {
	if width < 1 {
		width = 1
	}
	percent = clampBar(percent)

	filled := int(percent / 100.0 * float64(width))
	if filled > width {
		filled = width
	}

	return strings.Repeat(full, filled) + strings.Repeat(empty, width-filled)
}

func clampBar(percent float64) float64 {
	switch {
	case percent < 0:
		return 0
	case percent > 100:
		return 100
	default:
		return percent
	}
}
