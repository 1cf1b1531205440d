package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/sysmon/internal/config"
	"github.com/rileyhilliard/sysmon/internal/doctor"
	"github.com/rileyhilliard/sysmon/internal/monitor"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var doctorJSON bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that sysmon can read counters and list processes",
	Long: `Run diagnostics for the config file, both counter backends (procfs and
gopsutil), the ps and gopsutil process listings, and the terminal.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		checks := collectChecks(cfgFile, afero.NewOsFs(), isTerminal(os.Stdout))
		results := doctor.RunAll(checks)
		if doctorJSON {
			return outputDoctorJSON(cmd.OutOrStdout(), checks, results)
		}
		outputDoctorText(cmd.OutOrStdout(), checks, results)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "output in JSON format")
}

// DoctorOutput represents the JSON output for doctor command.
type DoctorOutput struct {
	Categories []CategoryOutput `json:"categories"`
	Summary    SummaryOutput    `json:"summary"`
}

// CategoryOutput represents a category of check results.
type CategoryOutput struct {
	Name    string               `json:"name"`
	Results []doctor.CheckResult `json:"results"`
}

// SummaryOutput summarizes the check results.
type SummaryOutput struct {
	Pass     int  `json:"pass"`
	Warn     int  `json:"warn"`
	Fail     int  `json:"fail"`
	AllClear bool `json:"all_clear"`
}

// collectChecks gathers every diagnostic. Source checks use defaults when the
// config itself is broken, since the config checks already report that.
func collectChecks(cfgPath string, fs afero.Fs, tty bool) []doctor.Check {
	cfg, err := config.LoadOrDefault(cfgPath)
	if err != nil || config.Validate(cfg) != nil {
		cfg = config.DefaultConfig()
	}

	var checks []doctor.Check
	checks = append(checks, doctor.NewConfigChecks(cfgPath)...)
	checks = append(checks, doctor.NewSourceChecks(cfg, fs)...)
	checks = append(checks, &doctor.TerminalCheck{IsTerminal: tty})
	return checks
}

// groupByCategory returns result indices per category in report order.
func groupByCategory(checks []doctor.Check) ([]string, map[string][]int) {
	grouped := make(map[string][]int)
	for i, check := range checks {
		grouped[check.Category()] = append(grouped[check.Category()], i)
	}

	order := make([]string, 0, len(grouped))
	for _, cat := range doctor.CategoryOrder {
		if len(grouped[cat]) > 0 {
			order = append(order, cat)
		}
	}
	return order, grouped
}

func outputDoctorJSON(w io.Writer, checks []doctor.Check, results []doctor.CheckResult) error {
	order, grouped := groupByCategory(checks)

	output := DoctorOutput{
		Categories: make([]CategoryOutput, 0, len(order)),
	}
	for _, cat := range order {
		out := CategoryOutput{Name: cat}
		for _, idx := range grouped[cat] {
			out.Results = append(out.Results, results[idx])
		}
		output.Categories = append(output.Categories, out)
	}

	counts := doctor.CountByStatus(results)
	output.Summary = SummaryOutput{
		Pass:     counts[doctor.StatusPass],
		Warn:     counts[doctor.StatusWarn],
		Fail:     counts[doctor.StatusFail],
		AllClear: !doctor.HasIssues(results),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func outputDoctorText(w io.Writer, checks []doctor.Check, results []doctor.CheckResult) {
	successStyle := lipgloss.NewStyle().Foreground(monitor.ColorHealthy)
	errorStyle := lipgloss.NewStyle().Foreground(monitor.ColorCritical)
	warnStyle := lipgloss.NewStyle().Foreground(monitor.ColorWarning)
	mutedStyle := lipgloss.NewStyle().Foreground(monitor.ColorTextMuted)
	headerStyle := lipgloss.NewStyle().Bold(true)

	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("sysmon Diagnostic Report"))
	fmt.Fprintln(w)

	order, grouped := groupByCategory(checks)
	for _, category := range order {
		fmt.Fprintln(w, headerStyle.Render(category))

		for _, idx := range grouped[category] {
			result := results[idx]

			symbol, style := "●", successStyle
			switch result.Status {
			case doctor.StatusWarn:
				style = warnStyle
			case doctor.StatusFail:
				symbol, style = "✗", errorStyle
			}

			fmt.Fprintf(w, "  %s %s\n", style.Render(symbol), result.Message)
			if result.Suggestion != "" && result.Status != doctor.StatusPass {
				for _, line := range strings.Split(result.Suggestion, "\n") {
					fmt.Fprintf(w, "    %s\n", mutedStyle.Render(line))
				}
			}
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, strings.Repeat("━", 60))
	fmt.Fprintln(w)

	if doctor.HasIssues(results) {
		fmt.Fprintf(w, "%s %s\n", errorStyle.Render("✗"), doctor.Summary(results))
	} else {
		fmt.Fprintf(w, "%s %s\n", successStyle.Render("✓"), doctor.Summary(results))
	}
	fmt.Fprintln(w)
}
