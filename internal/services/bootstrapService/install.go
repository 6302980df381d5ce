package bootstrapservice

import (
	"context"
	"fmt"
	"time"
)

// installPackage installs the target Python package, either with the system
// pip3 or with the pip inside the virtual environment.
func (p *Pipeline) installPackage(ctx context.Context) StepResult {
	started := time.Now()
	p.reporter.Banner(StepInstall)

	pkg := p.opts.Package

	var argv []string
	if p.opts.Variant == VariantVenv {
		argv = []string{venvPip(p.opts.VenvDir), "install", pkg}
	} else {
		argv = []string{"pip3", "install", pkg}
	}

	p.reporter.Infof("Installing %s", pkg)

	if err := p.runner.Run(ctx, argv...); err != nil {
		p.reporter.Failf("Failed to install %s", pkg)
		return failedResult(StepInstall, fmt.Errorf("install %s: %w", pkg, err), started)
	}

	p.reporter.Successf("%s installed successfully", pkg)

	return okResult(StepInstall, "installed "+pkg, started)
}
