package bootstrapservice

import (
	"context"
	"runtime"
	"time"

	"github.com/nbstrap/nbstrap/internal/constants"
)

type Variant string

const (
	// VariantSystem installs the package with the system pip.
	VariantSystem Variant = "system"
	// VariantVenv creates an isolated virtual environment and installs with
	// the environment's own pip, sidestepping externally-managed-environment
	// restrictions.
	VariantVenv Variant = "venv"
)

// Step names, also used as the runlog step keys.
const (
	StepDetectOS    = "detect operating system"
	StepInterpreter = "ensure python 3 interpreter"
	StepPip         = "ensure pip package manager"
	StepVenv        = "create virtual environment"
	StepInstall     = "install notebook package"
)

// Options configures a bootstrap run. The zero value is not usable; callers
// set at least Variant and Package.
type Options struct {
	Variant Variant
	// Target directory for the venv variant
	VenvDir string
	// Python package to install, normally "notebook"
	Package string

	// Overridable for tests; default runtime.GOOS / detected constants
	GOOS     string
	Platform *constants.PlatformConstants

	Runner   Runner
	Reporter *Reporter
}

// Pipeline runs the fixed bootstrap sequence:
//
//	Start -> OS-Detected -> Interpreter-Ensured ->
//	{PackageManager-Ensured | Env-Created} -> Installed -> Done
//
// Any step failure halts the sequence. There is no rollback of partially
// completed steps.
type Pipeline struct {
	opts     Options
	runner   Runner
	reporter *Reporter
	plan     Plan
}

func NewPipeline(opts Options) *Pipeline {
	if opts.GOOS == "" {
		opts.GOOS = runtime.GOOS
	}
	if opts.Runner == nil {
		opts.Runner = NewRunner()
	}
	if opts.Reporter == nil {
		opts.Reporter = NewReporter()
	}

	return &Pipeline{
		opts:     opts,
		runner:   opts.Runner,
		reporter: opts.Reporter,
	}
}

// Plan returns the resolved plan. Only meaningful after Run has passed the
// OS detection step.
func (p *Pipeline) Plan() Plan {
	return p.plan
}

// Run executes the whole bootstrap. It returns the per-step results (for the
// run history) and the first fatal error, if any.
func (p *Pipeline) Run(ctx context.Context) ([]StepResult, error) {
	var results []StepResult

	res := p.detectOS()
	results = append(results, res)
	if res.Err != nil {
		return results, res.Err
	}

	res = p.ensureInterpreter(ctx)
	results = append(results, res)
	if res.Err != nil {
		return results, res.Err
	}

	if p.opts.Variant == VariantVenv {
		res = p.createVenv(ctx)
	} else {
		res = p.ensurePip(ctx)
	}
	results = append(results, res)
	if res.Err != nil {
		return results, res.Err
	}

	res = p.installPackage(ctx)
	results = append(results, res)
	if res.Err != nil {
		return results, res.Err
	}

	if p.opts.Variant == VariantVenv {
		p.reporter.FinishVenv(p.opts.VenvDir)
	} else {
		p.reporter.FinishSystem(p.opts.Package)
	}

	return results, nil
}

func (p *Pipeline) detectOS() StepResult {
	started := time.Now()
	p.reporter.Banner(StepDetectOS)

	pc := p.platformConstants()
	plan, err := ResolvePlan(p.opts.GOOS, pc)
	if err != nil {
		for _, line := range UnsupportedOSLines(p.opts.GOOS) {
			p.reporter.Failf("%s", line)
		}
		return failedResult(StepDetectOS, err, started)
	}

	p.plan = plan
	p.reporter.Infof("Detected %s (%s), using %s", plan.OSFamily, plan.Distribution, plan.PackageManager)

	return okResult(StepDetectOS, plan.PackageManager, started)
}

func (p *Pipeline) platformConstants() constants.PlatformConstants {
	if p.opts.Platform != nil {
		return *p.opts.Platform
	}
	return constants.GetPlatformConstants()
}
