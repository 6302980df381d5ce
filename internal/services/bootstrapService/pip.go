package bootstrapservice

import (
	"context"
	"fmt"
	"time"
)

// ensurePip checks for the pip3 executable (system variant only). Missing pip
// has a remedy on Linux (the distro package); on macOS there is no automatic
// remedy and the bootstrap stops with guidance.
func (p *Pipeline) ensurePip(ctx context.Context) StepResult {
	started := time.Now()
	p.reporter.Banner(StepPip)

	if path, err := p.runner.LookPath("pip3"); err == nil {
		version, _ := p.runner.Output(ctx, "pip3", "--version")
		p.reporter.Infof("Found pip3 at %s (%s)", path, version)
		return okResult(StepPip, version, started)
	}

	if p.plan.OSFamily != "linux" {
		p.reporter.Failf("pip3 not found and cannot be installed automatically on %s.", p.plan.OSFamily)
		p.reporter.Failf("Install it manually, e.g. 'python3 -m ensurepip --upgrade', then re-run nbstrap.")
		return failedResult(StepPip, fmt.Errorf("pip3 not found, no automatic remedy on %s", p.plan.OSFamily), started)
	}

	p.reporter.Infof("pip3 not found, installing %s with %s", p.plan.PipPackage, p.plan.PackageManager)

	installArgv := append(append([]string{}, p.plan.InstallCmd...), p.plan.PipPackage)
	if err := p.runner.Run(ctx, installArgv...); err != nil {
		p.reporter.Warnf("%s install reported an error: %v", p.plan.PipPackage, err)
	}

	return okResult(StepPip, "installed "+p.plan.PipPackage, started)
}
