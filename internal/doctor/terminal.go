package doctor

// TerminalCheck warns when stdout is not a terminal, since the dashboard
// refuses to start there.
type TerminalCheck struct {
	IsTerminal bool
}

func (c *TerminalCheck) Name() string     { return "terminal" }
func (c *TerminalCheck) Category() string { return CategoryTerminal }

func (c *TerminalCheck) Run() CheckResult {
	if !c.IsTerminal {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "stdout is not a terminal",
			Suggestion: "The dashboard only starts in an interactive terminal",
		}
	}
	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: "stdout is a terminal",
	}
}
