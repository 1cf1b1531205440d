// Package monitor implements the sysmon terminal dashboard.
//
// The dashboard shows host-wide CPU and memory utilization as bar gauges and
// a scrollable, filterable table of the busiest processes.
//
// # Architecture
//
// The package uses the Bubble Tea framework, which follows The Elm Architecture
// (Model-Update-View pattern):
//
//   - Model: Owns MonitorState (sampler state, process table, filter and scroll)
//   - Update: Processes messages (keystrokes, ticks, finished cycles)
//   - View: Renders the current state to a string for display
//
// # Key Components
//
//	Model          - The Bubble Tea model; the single owner of MonitorState
//	Collector      - Runs one refresh cycle: CPU, memory, process snapshot
//	ComputeView    - Derives the visible window from the table, filter and viewport
//	HandleAction   - Applies scroll and quit actions to the view state
//	HostInfoSource - Hostname, kernel, uptime and load for the header
//
// # Message Flow
//
// The dashboard runs one cycle at a time:
//
//  1. collectCmd() runs Collector.Collect off the update goroutine
//  2. sampleMsg arrives with the new readings and sampler state
//  3. The model stores them, recomputes the view and schedules a tickMsg
//  4. tickMsg starts the next cycle, unless the filter line is being edited
//
// With compensated pacing the tick fires after the interval minus the time the
// cycle took; with fixed pacing it waits the whole interval.
//
// # Keyboard Shortcuts
//
// Navigation and control is handled via keybindings defined in keybindings.go:
//
//	q, Ctrl+C   - Quit
//	/           - Edit the command filter (Enter applies, Esc cancels)
//	j/k, ↑/↓    - Scroll the process table
//	?           - Toggle help overlay
package monitor
