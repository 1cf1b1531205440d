package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rileyhilliard/sysmon/internal/doctor"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticCheck struct {
	name     string
	category string
	result   doctor.CheckResult
}

func (c staticCheck) Name() string            { return c.name }
func (c staticCheck) Category() string        { return c.category }
func (c staticCheck) Run() doctor.CheckResult { return c.result }

func sampleChecks() []doctor.Check {
	return []doctor.Check{
		staticCheck{"terminal", doctor.CategoryTerminal, doctor.CheckResult{
			Name: "terminal", Status: doctor.StatusWarn, Message: "stdout is not a terminal", Suggestion: "run it in a terminal",
		}},
		staticCheck{"config_file", doctor.CategoryConfig, doctor.CheckResult{
			Name: "config_file", Status: doctor.StatusPass, Message: "No config file, using defaults",
		}},
		staticCheck{"listing_ps", doctor.CategorySources, doctor.CheckResult{
			Name: "listing_ps", Status: doctor.StatusFail, Message: "Process listing (ps) failed", Suggestion: "install ps",
		}},
	}
}

func TestCollectChecks(t *testing.T) {
	isolate(t)

	checks := collectChecks("", afero.NewMemMapFs(), false)

	names := []string{}
	for _, c := range checks {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{
		"config_file", "config_values",
		"counters_procfs", "listing_ps", "counters_gopsutil", "listing_gopsutil",
		"terminal",
	}, names)
}

func TestCollectChecks_BrokenConfigStillChecksSources(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, "source: carrier-pigeon\n")

	checks := collectChecks(path, afero.NewMemMapFs(), true)
	assert.Len(t, checks, 7)

	results := doctor.RunAll(checks[:2])
	assert.Equal(t, doctor.StatusPass, results[0].Status)
	assert.Equal(t, doctor.StatusFail, results[1].Status)
}

func TestOutputDoctorText(t *testing.T) {
	checks := sampleChecks()
	results := doctor.RunAll(checks)

	var buf bytes.Buffer
	outputDoctorText(&buf, checks, results)
	out := buf.String()

	assert.Contains(t, out, "sysmon Diagnostic Report")
	assert.Contains(t, out, "run it in a terminal")
	assert.Contains(t, out, "install ps")
	assert.Contains(t, out, "2 issues found")

	// categories follow report order, not check order
	cfgAt := bytes.Index(buf.Bytes(), []byte("CONFIG"))
	srcAt := bytes.Index(buf.Bytes(), []byte("SOURCES"))
	ttyAt := bytes.Index(buf.Bytes(), []byte("TERMINAL"))
	assert.Less(t, cfgAt, srcAt)
	assert.Less(t, srcAt, ttyAt)
}

func TestOutputDoctorJSON(t *testing.T) {
	checks := sampleChecks()
	results := doctor.RunAll(checks)

	var buf bytes.Buffer
	require.NoError(t, outputDoctorJSON(&buf, checks, results))

	var out struct {
		Categories []struct {
			Name    string `json:"name"`
			Results []struct {
				Name   string `json:"name"`
				Status string `json:"status"`
			} `json:"results"`
		} `json:"categories"`
		Summary SummaryOutput `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	require.Len(t, out.Categories, 3)
	assert.Equal(t, "CONFIG", out.Categories[0].Name)
	assert.Equal(t, "fail", out.Categories[1].Results[0].Status)
	assert.Equal(t, SummaryOutput{Pass: 1, Warn: 1, Fail: 1}, out.Summary)
}
