package historyCommand

import (
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	runlogservice "github.com/nbstrap/nbstrap/internal/services/runlogService"
	"github.com/nbstrap/nbstrap/internal/services/runlogService/ui"
	"github.com/spf13/cobra"
)

func NewHistoryCommand() *cobra.Command {
	var (
		limit  int
		useTUI bool
	)

	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "Show past nbstrap install runs.",
		Long: `List recorded install runs from the local history database
(~/.nbstrap/history.db).

Pass a run ID to see that run's individual steps, or --tui for an
interactive browser.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, err := runlogservice.DefaultDBPath()
			if err != nil {
				return err
			}

			svc, err := runlogservice.NewRunlogService(dbPath)
			if err != nil {
				return fmt.Errorf("failed to open history database: %w", err)
			}
			defer svc.Close()

			if useTUI {
				return ui.Run(svc)
			}

			if len(args) == 1 {
				return printSteps(svc, args[0])
			}

			return printRuns(svc, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Max number of runs to list")
	cmd.Flags().BoolVar(&useTUI, "tui", false, "Browse history in an interactive TUI")

	return cmd
}

func printRuns(svc *runlogservice.RunlogService, limit int) error {
	runs, err := svc.ListRuns(limit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet. Run 'nbstrap install' first.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Started", "Variant", "Package", "Status", "Failed Step"})

	for _, run := range runs {
		t.AppendRow(table.Row{
			shortID(run.ID),
			run.StartedAt.Local().Format(time.DateTime),
			run.Variant,
			run.Package,
			run.Status,
			run.FailedStep,
		})
	}

	t.Render()
	return nil
}

func printSteps(svc *runlogservice.RunlogService, runID string) error {
	steps, err := svc.RunSteps(runID)
	if err != nil {
		return err
	}

	if len(steps) == 0 {
		return fmt.Errorf("no steps found for run %s (pass the full run ID)", runID)
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Step", "Status", "Detail", "Duration"})

	for _, step := range steps {
		t.AppendRow(table.Row{
			step.Seq,
			step.Name,
			step.Status,
			step.Detail,
			fmt.Sprintf("%dms", step.DurationMs),
		})
	}

	t.Render()
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
