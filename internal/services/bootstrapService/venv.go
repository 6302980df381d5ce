package bootstrapservice

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// createVenv creates the isolated environment directory (venv variant only).
// Re-runs are idempotent: an existing directory is assumed to be a usable
// environment and creation is skipped (its contents are not validated).
func (p *Pipeline) createVenv(ctx context.Context) StepResult {
	started := time.Now()
	p.reporter.Banner(StepVenv)

	dir := p.opts.VenvDir

	if _, err := os.Stat(dir); err == nil {
		p.reporter.Infof("Virtual environment %s already exists, skipping creation", dir)
		return skippedResult(StepVenv, "already exists", started)
	}

	p.reporter.Infof("Creating virtual environment in %s", dir)

	if err := p.runner.Run(ctx, "python3", "-m", "venv", dir); err != nil {
		p.reporter.Failf("Failed to create virtual environment in %s", dir)
		return failedResult(StepVenv, fmt.Errorf("create venv %s: %w", dir, err), started)
	}

	p.reporter.Infof("Virtual environment created")

	return okResult(StepVenv, "created "+dir, started)
}

// venvPip returns the path to the pip executable inside the environment.
// The in-env pip is always used for the venv variant so the install cannot
// trip the system Python's externally-managed-environment restriction.
func venvPip(venvDir string) string {
	return filepath.Join(venvDir, "bin", "pip")
}
