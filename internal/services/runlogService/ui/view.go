package ui

import (
	"fmt"
	"strings"
)

func (m UIModel) View() string {
	if m.mode == modeRuns {
		return m.viewRuns()
	}
	return m.viewSteps()
}

func (m UIModel) viewRuns() string {
	var b strings.Builder
	b.WriteString("Bootstrap History - Enter to inspect a run, r to reload, q to quit.\n\n")
	if m.errMsg != "" {
		b.WriteString(fmt.Sprintf("Error: %s\n\n", m.errMsg))
	}
	if m.loading {
		b.WriteString(m.spin.View() + " Loading runs...\n")
		return b.String()
	}
	if len(m.runs) == 0 {
		b.WriteString("No bootstrap runs recorded yet. Run 'nbstrap install' first.\n")
		return b.String()
	}

	b.WriteString(m.buildRunsTable().View())
	b.WriteString("\n")

	return b.String()
}

func (m UIModel) viewSteps() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Run %s (%s, %s)  -  Esc to go back\n\n",
		m.selectedRun.ID, m.selectedRun.Variant, m.selectedRun.StartedAt.Format("2006-01-02 15:04:05")))
	if m.errMsg != "" {
		b.WriteString(fmt.Sprintf("Error: %s\n\n", m.errMsg))
	}
	if m.loading {
		b.WriteString(m.spin.View() + " Loading steps...\n")
		return b.String()
	}
	if len(m.steps) == 0 {
		b.WriteString("No steps recorded for this run.\n")
		return b.String()
	}

	b.WriteString(m.buildStepsTable().View())
	b.WriteString("\n")

	return b.String()
}
