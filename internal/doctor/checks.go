// Package doctor runs startup diagnostics for sysmon: config, counter
// sources, process listing and the terminal.
package doctor

import (
	"fmt"
)

// CheckStatus represents the result status of a check.
type CheckStatus int

const (
	StatusPass CheckStatus = iota
	StatusWarn
	StatusFail
)

// String returns a human-readable status string.
func (s CheckStatus) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusWarn:
		return "warn"
	case StatusFail:
		return "fail"
	default:
		return "unknown"
	}
}

// MarshalText renders the status name in JSON output.
func (s CheckStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// CheckResult contains the outcome of running a check.
type CheckResult struct {
	Name       string      `json:"name"`
	Status     CheckStatus `json:"status"`
	Message    string      `json:"message"`
	Suggestion string      `json:"suggestion,omitempty"`
}

// Check defines the interface for diagnostic checks.
type Check interface {
	// Name returns the check's identifier.
	Name() string

	// Category returns the check's category (e.g., "CONFIG", "SOURCES").
	Category() string

	// Run executes the check and returns the result.
	Run() CheckResult
}

// Category names, in report order.
const (
	CategoryConfig   = "CONFIG"
	CategorySources  = "SOURCES"
	CategoryTerminal = "TERMINAL"
)

// CategoryOrder is the order categories appear in reports.
var CategoryOrder = []string{CategoryConfig, CategorySources, CategoryTerminal}

// RunAll executes all checks in order and returns the results.
func RunAll(checks []Check) []CheckResult {
	results := make([]CheckResult, len(checks))
	for i, check := range checks {
		results[i] = check.Run()
	}
	return results
}

// CountByStatus counts results by status.
func CountByStatus(results []CheckResult) map[CheckStatus]int {
	counts := make(map[CheckStatus]int)
	for _, r := range results {
		counts[r.Status]++
	}
	return counts
}

// HasFailures returns true if any result has a fail status.
func HasFailures(results []CheckResult) bool {
	return CountByStatus(results)[StatusFail] > 0
}

// HasIssues returns true if any result has a fail or warn status.
func HasIssues(results []CheckResult) bool {
	counts := CountByStatus(results)
	return counts[StatusFail]+counts[StatusWarn] > 0
}

// Summary returns a summary string of the check results.
func Summary(results []CheckResult) string {
	if !HasIssues(results) {
		return "Everything looks good"
	}

	counts := CountByStatus(results)
	total := counts[StatusWarn] + counts[StatusFail]
	if total == 1 {
		return "1 issue found"
	}
	return fmt.Sprintf("%d issues found", total)
}
