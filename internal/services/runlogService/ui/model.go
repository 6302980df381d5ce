package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	runlogservice "github.com/nbstrap/nbstrap/internal/services/runlogService"
)

type viewMode int

const (
	modeRuns viewMode = iota
	modeSteps
)

type UIModel struct {
	// service
	svc *runlogservice.RunlogService

	// mode / navigation
	mode viewMode

	// loaded data
	runs  []runlogservice.RunRecord
	steps []runlogservice.StepRecord

	// selection
	selectedIndex int
	selectedRun   runlogservice.RunRecord

	// quick state
	errMsg  string
	loading bool
	spin    spinner.Model

	termWidth  int
	termHeight int
}

// NewUIModel builds the history browser backed by the runlog service.
func NewUIModel(svc *runlogservice.RunlogService) UIModel {
	return UIModel{
		svc:     svc,
		mode:    modeRuns,
		loading: true,
		spin:    spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (m UIModel) Init() tea.Cmd {
	return tea.Batch(m.loadRunsCmd(), m.spin.Tick)
}

// Run starts the bubbletea program.
func Run(svc *runlogservice.RunlogService) error {
	p := tea.NewProgram(NewUIModel(svc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
