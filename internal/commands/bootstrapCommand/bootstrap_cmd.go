package bootstrapCommand

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nbstrap/nbstrap/internal/config"
	bootstrapservice "github.com/nbstrap/nbstrap/internal/services/bootstrapService"
	preflightservice "github.com/nbstrap/nbstrap/internal/services/preflightService"
	runlogservice "github.com/nbstrap/nbstrap/internal/services/runlogService"
	"github.com/nbstrap/nbstrap/internal/utils/path"
	"github.com/spf13/cobra"
)

func NewInstallCommand() *cobra.Command {
	var (
		useVenv       bool
		venvDir       string
		pkg           string
		skipPreflight bool
		noLog         bool
	)

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install Jupyter Notebook on this machine.",
		Long: `Detect the host platform, make sure a Python 3 toolchain is present,
and install Jupyter Notebook with pip.

By default the package goes into the system Python. Pass --venv to create an
isolated virtual environment and install there instead, which sidesteps
externally-managed-environment errors on newer distros.

Run nbstrap show constants to see what nbstrap detected about this host.
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Flags win over config file/env values
			if pkg == "" {
				pkg = config.Package()
			}
			if venvDir == "" {
				venvDir = config.VenvDir()
			}

			expandedVenv, err := path.ExpandPath(venvDir)
			if err != nil {
				return fmt.Errorf("failed to expand venv path %s: %w", venvDir, err)
			}

			if !skipPreflight {
				runPreflight(cmd, expandedVenv)
			}

			variant := bootstrapservice.VariantSystem
			if useVenv {
				variant = bootstrapservice.VariantVenv
			}

			pipeline := bootstrapservice.NewPipeline(bootstrapservice.Options{
				Variant: variant,
				VenvDir: expandedVenv,
				Package: pkg,
			})

			startedAt := time.Now()
			results, runErr := pipeline.Run(cmd.Context())

			if !noLog {
				if logErr := recordRun(variant, pkg, expandedVenv, startedAt, results, runErr); logErr != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to record run history: %v\n", logErr)
				}
			}

			if runErr != nil {
				// Step output already explained the failure, keep cobra quiet
				cmd.SilenceUsage = true
				cmd.SilenceErrors = true
				return runErr
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&useVenv, "venv", false, "Install into a virtual environment instead of system Python")
	cmd.Flags().StringVar(&venvDir, "venv-dir", "", fmt.Sprintf("Virtual environment directory (default %q)", config.DefaultVenvDir))
	cmd.Flags().StringVar(&pkg, "package", "", fmt.Sprintf("Python package to install (default %q)", config.DefaultPackage))
	cmd.Flags().BoolVar(&skipPreflight, "skip-preflight", false, "Skip network & disk space checks before installing")
	cmd.Flags().BoolVar(&noLog, "no-log", false, "Don't record this run in the history database")

	return cmd
}

// runPreflight warns about problems but never blocks the install.
func runPreflight(cmd *cobra.Command, venvDir string) {
	net := preflightservice.CheckNetwork(cmd.Context())
	if config.Debug() {
		fmt.Fprintf(cmd.ErrOrStderr(), "preflight network: reachable=%t method=%s detail=%s\n",
			net.Reachable, net.Method, net.Detail)
	}
	if !net.Reachable {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s looks unreachable (%s), installs may fail\n",
			preflightservice.DefaultTarget, net.Detail)
		if len(net.GatewayIPs) > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "Default gateway: %s\n", strings.Join(net.GatewayIPs, ", "))
		}
	}

	free, enough := preflightservice.CheckDiskSpace(venvDir)
	if !enough {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: low disk space (%d bytes free), installs may fail\n", free)
	}
}

func recordRun(variant bootstrapservice.Variant, pkg, venvDir string, startedAt time.Time, results []bootstrapservice.StepResult, runErr error) error {
	dbPath, err := runlogservice.DefaultDBPath()
	if err != nil {
		return err
	}

	svc, err := runlogservice.NewRunlogService(dbPath)
	if err != nil {
		return err
	}
	defer svc.Close()

	run := runlogservice.RunRecord{
		ID:         uuid.NewString(),
		Variant:    string(variant),
		Package:    pkg,
		StartedAt:  startedAt,
		FinishedAt: time.Now(),
		Status:     "ok",
	}
	if variant == bootstrapservice.VariantVenv {
		run.VenvDir = venvDir
	}

	var steps []runlogservice.StepRecord
	for i, res := range results {
		detail := res.Detail
		if res.Err != nil {
			detail = res.Err.Error()
		}
		steps = append(steps, runlogservice.StepRecord{
			RunID:      run.ID,
			Seq:        i,
			Name:       res.Name,
			Status:     string(res.Status),
			Detail:     detail,
			DurationMs: res.Duration.Milliseconds(),
		})
	}

	if runErr != nil {
		run.Status = "failed"
		if len(results) > 0 {
			run.FailedStep = results[len(results)-1].Name
		}
	}

	return svc.RecordRun(run, steps)
}
