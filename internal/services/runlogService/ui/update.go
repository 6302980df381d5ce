package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m UIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			return m, tea.Quit
		}

		// Runs list navigation
		if m.mode == modeRuns {
			switch msg.String() {
			case "up", "k":
				if m.selectedIndex > 0 {
					m.selectedIndex--
				}
			case "down", "j":
				if m.selectedIndex < len(m.runs)-1 {
					m.selectedIndex++
				}
			case "r":
				m.loading = true
				return m, m.loadRunsCmd()
			case "enter":
				if m.selectedIndex < len(m.runs) {
					m.selectedRun = m.runs[m.selectedIndex]
					m.mode = modeSteps
					m.loading = true
					return m, m.loadStepsCmd(m.selectedRun.ID)
				}
			}
			return m, nil
		}

		// Steps view: Esc returns to the runs list
		if m.mode == modeSteps && msg.Type == tea.KeyEsc {
			m.mode = modeRuns
			m.steps = nil
			return m, nil
		}

		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case runsLoadedMsg:
		m.runs = msg
		m.loading = false
		if m.selectedIndex >= len(m.runs) {
			m.selectedIndex = max(0, len(m.runs)-1)
		}
		return m, nil

	case stepsLoadedMsg:
		m.steps = msg
		m.loading = false
		return m, nil

	case error:
		m.errMsg = msg.Error()
		m.loading = false
		return m, nil
	}

	return m, nil
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
