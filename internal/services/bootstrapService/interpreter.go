package bootstrapservice

import (
	"context"
	"time"
)

// ensureInterpreter checks for a python3 executable and installs one through
// the platform package manager when it is missing.
//
// Note: when python3 is absent, the install is fire-and-forget. The outcome
// is not re-verified before moving on, matching the original bootstrap
// behavior. A failed install surfaces later when venv creation or pip fails.
func (p *Pipeline) ensureInterpreter(ctx context.Context) StepResult {
	started := time.Now()
	p.reporter.Banner(StepInterpreter)

	detail := ""

	if path, err := p.runner.LookPath("python3"); err == nil {
		version, _ := p.runner.Output(ctx, "python3", "--version")
		p.reporter.Infof("Found python3 at %s (%s)", path, version)
		detail = version
	} else {
		p.reporter.Infof("python3 not found, installing %s with %s", p.plan.PythonPackage, p.plan.PackageManager)

		if err := p.runner.Run(ctx, p.plan.UpdateCmd...); err != nil {
			p.reporter.Warnf("package index refresh failed: %v", err)
		}

		installArgv := append(append([]string{}, p.plan.InstallCmd...), p.plan.PythonPackage)
		if err := p.runner.Run(ctx, installArgv...); err != nil {
			p.reporter.Warnf("python3 install reported an error: %v", err)
		}
		detail = "installed " + p.plan.PythonPackage
	}

	// Linux distributions split venv support into its own OS package. Check
	// the package database and install it when missing.
	if len(p.plan.PkgQueryCmd) > 0 {
		queryArgv := append(append([]string{}, p.plan.PkgQueryCmd...), p.plan.VenvPackage)
		if _, err := p.runner.Output(ctx, queryArgv...); err != nil {
			p.reporter.Infof("%s not installed, installing", p.plan.VenvPackage)

			installArgv := append(append([]string{}, p.plan.InstallCmd...), p.plan.VenvPackage)
			if err := p.runner.Run(ctx, installArgv...); err != nil {
				p.reporter.Warnf("%s install reported an error: %v", p.plan.VenvPackage, err)
			}
		} else {
			p.reporter.Infof("%s already installed", p.plan.VenvPackage)
		}
	}

	return okResult(StepInterpreter, detail, started)
}
