package checkCommand

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/nbstrap/nbstrap/internal/services/platformService/capabilities"
	"github.com/spf13/cobra"
)

type checkRow struct {
	Component string
	Found     bool
	Detail    string
	// When false, a missing component is reported but doesn't fail the check
	Required bool
}

func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check whether this machine is ready to run Jupyter Notebook.",
		Long: `Probe the host for the Python toolchain nbstrap needs: the python3
interpreter, pip3, the venv module, and the jupyter launcher itself.

Exits non-zero when a required component is missing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := []checkRow{
				checkBinary("python3", true),
				checkBinary("pip3", true),
				checkVenvModule(),
				checkBinary("jupyter", false),
			}

			renderChecks(rows)

			for _, row := range rows {
				if row.Required && !row.Found {
					cmd.SilenceUsage = true
					return fmt.Errorf("missing required component: %s", row.Component)
				}
			}

			fmt.Println("\nAll required components found.")
			return nil
		},
	}

	return cmd
}

func checkBinary(bin string, required bool) checkRow {
	path, err := capabilities.Which(bin)
	if err != nil {
		return checkRow{Component: bin, Found: false, Detail: "not found in PATH", Required: required}
	}
	return checkRow{Component: bin, Found: true, Detail: path, Required: required}
}

func checkVenvModule() checkRow {
	row := checkRow{Component: "python3 -m venv", Required: false}

	if !capabilities.IsCommandAvailable("python3") {
		row.Detail = "python3 not available"
		return row
	}

	if err := exec.Command("python3", "-c", "import venv").Run(); err != nil {
		row.Detail = "venv module not importable"
		return row
	}

	row.Found = true
	row.Detail = "importable"
	return row
}

func renderChecks(rows []checkRow) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Component", "Status", "Detail"})

	for _, row := range rows {
		status := text.FgRed.Sprint("missing")
		if row.Found {
			status = text.FgGreen.Sprint("ok")
		} else if !row.Required {
			status = text.FgYellow.Sprint("missing (optional)")
		}
		t.AppendRow(table.Row{row.Component, status, row.Detail})
	}

	t.Render()
}
