package ui

import (
	"fmt"
	"time"

	t "github.com/evertras/bubble-table/table"
)

const (
	colStarted  = "started"
	colVariant  = "variant"
	colPackage  = "package"
	colStatus   = "status"
	colFailed   = "failed_step"
	colStep     = "step"
	colDetail   = "detail"
	colDuration = "duration"
)

func (m UIModel) buildRunsTable() t.Model {
	cols := []t.Column{
		t.NewColumn(colStarted, "Started", 20),
		t.NewColumn(colVariant, "Variant", 8),
		t.NewColumn(colPackage, "Package", 14),
		t.NewColumn(colStatus, "Status", 8),
		t.NewColumn(colFailed, "Failed Step", 28),
	}

	var rows []t.Row
	for i, run := range m.runs {
		row := t.RowData{
			colStarted: run.StartedAt.Format("2006-01-02 15:04:05"),
			colVariant: run.Variant,
			colPackage: run.Package,
			colStatus:  run.Status,
			colFailed:  run.FailedStep,
		}
		if i == m.selectedIndex {
			row[colStatus] = "[" + run.Status + "]"
		}
		rows = append(rows, t.NewRow(row))
	}

	return t.New(cols).
		WithRows(rows).
		Focused(true)
}

func (m UIModel) buildStepsTable() t.Model {
	cols := []t.Column{
		t.NewColumn(colStep, "Step", 30),
		t.NewColumn(colStatus, "Status", 9),
		t.NewColumn(colDuration, "Duration", 10),
		t.NewColumn(colDetail, "Detail", 40),
	}

	var rows []t.Row
	for _, step := range m.steps {
		rows = append(rows, t.NewRow(t.RowData{
			colStep:     step.Name,
			colStatus:   step.Status,
			colDuration: fmt.Sprintf("%v", time.Duration(step.DurationMs)*time.Millisecond),
			colDetail:   step.Detail,
		}))
	}

	return t.New(cols).WithRows(rows)
}
