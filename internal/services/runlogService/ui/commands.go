package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// loadRunsCmd fetches the most recent bootstrap runs
func (m UIModel) loadRunsCmd() tea.Cmd {
	return func() tea.Msg {
		runs, err := m.svc.ListRuns(100)
		if err != nil {
			return fmt.Errorf("load runs: %w", err)
		}
		return runsLoadedMsg(runs)
	}
}

// loadStepsCmd fetches the steps of the selected run
func (m UIModel) loadStepsCmd(runID string) tea.Cmd {
	return func() tea.Msg {
		steps, err := m.svc.RunSteps(runID)
		if err != nil {
			return fmt.Errorf("load steps: %w", err)
		}
		return stepsLoadedMsg(steps)
	}
}
