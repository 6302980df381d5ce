package bootstrapservice

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nbstrap/nbstrap/internal/constants"
)

// fakeRunner records every command the pipeline issues and answers from
// canned tables, keyed by the space-joined argv.
type fakeRunner struct {
	// bin -> resolved path; anything absent is "not installed"
	binaries map[string]string
	// argv -> error for Run
	runErrs map[string]error
	// argv -> output for Output
	outputs map[string]string
	// argv -> error for Output
	outputErrs map[string]error

	runCalls []string
}

func (f *fakeRunner) LookPath(bin string) (string, error) {
	if path, ok := f.binaries[bin]; ok {
		return path, nil
	}
	return "", fmt.Errorf("exec: %q: executable file not found in $PATH", bin)
}

func (f *fakeRunner) Run(_ context.Context, argv ...string) error {
	key := strings.Join(argv, " ")
	f.runCalls = append(f.runCalls, key)
	return f.runErrs[key]
}

func (f *fakeRunner) Output(_ context.Context, argv ...string) (string, error) {
	key := strings.Join(argv, " ")
	return f.outputs[key], f.outputErrs[key]
}

func (f *fakeRunner) ran(argv string) bool {
	for _, call := range f.runCalls {
		if call == argv {
			return true
		}
	}
	return false
}

var ubuntuConstants = constants.PlatformConstants{
	Family:         "linux",
	Distribution:   "Ubuntu",
	Release:        "24.04",
	PackageManager: "apt",
}

var macosConstants = constants.PlatformConstants{
	Family:         "darwin",
	Distribution:   "macos",
	Release:        "14.5",
	PackageManager: "brew",
}

func newTestPipeline(t *testing.T, opts Options, runner *fakeRunner) (*Pipeline, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	opts.Runner = runner
	opts.Reporter = &Reporter{Out: out}

	return NewPipeline(opts), out
}

func TestSystemVariantToolchainPresent(t *testing.T) {
	runner := &fakeRunner{
		binaries: map[string]string{"python3": "/usr/bin/python3", "pip3": "/usr/bin/pip3"},
		outputs: map[string]string{
			"python3 --version":    "Python 3.12.3",
			"pip3 --version":       "pip 24.0",
			"dpkg -s python3-venv": "Status: install ok installed",
		},
	}

	p, _ := newTestPipeline(t, Options{
		Variant:  VariantSystem,
		Package:  "notebook",
		GOOS:     "linux",
		Platform: &ubuntuConstants,
	}, runner)

	results, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if len(results) != 4 {
		t.Fatalf("got %d step results, want 4", len(results))
	}
	for _, res := range results {
		if res.Status != StatusOK {
			t.Errorf("step %q status = %q, want ok", res.Name, res.Status)
		}
	}

	if !runner.ran("pip3 install notebook") {
		t.Errorf("expected 'pip3 install notebook' to run, calls: %v", runner.runCalls)
	}
	// Toolchain was present, nothing should have been installed via apt
	if runner.ran("sudo apt-get install -y python3") {
		t.Errorf("python3 should not be reinstalled when already present")
	}
}

func TestInterpreterInstallErrorsDontStopPipeline(t *testing.T) {
	// python3 missing; both the index refresh and the install fail. The
	// interpreter step deliberately doesn't verify the outcome, so the
	// pipeline keeps going and the failure surfaces at a later step.
	runner := &fakeRunner{
		binaries: map[string]string{"pip3": "/usr/bin/pip3"},
		runErrs: map[string]error{
			"sudo apt-get update":             errors.New("exit status 100"),
			"sudo apt-get install -y python3": errors.New("exit status 100"),
		},
		outputErrs: map[string]error{
			"dpkg -s python3-venv": errors.New("exit status 1"),
		},
	}

	p, out := newTestPipeline(t, Options{
		Variant:  VariantSystem,
		Package:  "notebook",
		GOOS:     "linux",
		Platform: &ubuntuConstants,
	}, runner)

	results, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	interp := results[1]
	if interp.Name != StepInterpreter || interp.Status != StatusOK {
		t.Errorf("interpreter step = %+v, want ok despite install errors", interp)
	}

	if !strings.Contains(out.String(), "python3 install reported an error") {
		t.Errorf("install error should be reported as a warning, got:\n%s", out.String())
	}

	// The venv support package was also attempted since dpkg said missing
	if !runner.ran("sudo apt-get install -y python3-venv") {
		t.Errorf("expected venv support package install, calls: %v", runner.runCalls)
	}
}

func TestVenvVariantCreatesEnvironment(t *testing.T) {
	venvDir := filepath.Join(t.TempDir(), "jupyter-venv")

	runner := &fakeRunner{
		binaries: map[string]string{"python3": "/usr/bin/python3"},
		outputs: map[string]string{
			"python3 --version":    "Python 3.12.3",
			"dpkg -s python3-venv": "Status: install ok installed",
		},
	}

	p, _ := newTestPipeline(t, Options{
		Variant:  VariantVenv,
		VenvDir:  venvDir,
		Package:  "notebook",
		GOOS:     "linux",
		Platform: &ubuntuConstants,
	}, runner)

	results, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if !runner.ran("python3 -m venv " + venvDir) {
		t.Errorf("expected venv creation, calls: %v", runner.runCalls)
	}

	wantPip := filepath.Join(venvDir, "bin", "pip")
	if !runner.ran(wantPip + " install notebook") {
		t.Errorf("expected install via in-env pip %s, calls: %v", wantPip, runner.runCalls)
	}

	last := results[len(results)-1]
	if last.Name != StepInstall || last.Status != StatusOK {
		t.Errorf("final step = %+v, want successful install", last)
	}
}

func TestVenvVariantSkipsExistingDirectory(t *testing.T) {
	venvDir := t.TempDir()

	runner := &fakeRunner{
		binaries: map[string]string{"python3": "/usr/bin/python3"},
		outputs: map[string]string{
			"python3 --version":    "Python 3.12.3",
			"dpkg -s python3-venv": "Status: install ok installed",
		},
	}

	p, _ := newTestPipeline(t, Options{
		Variant:  VariantVenv,
		VenvDir:  venvDir,
		Package:  "notebook",
		GOOS:     "linux",
		Platform: &ubuntuConstants,
	}, runner)

	results, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if runner.ran("python3 -m venv " + venvDir) {
		t.Errorf("existing venv dir should skip creation, calls: %v", runner.runCalls)
	}

	venvStep := results[2]
	if venvStep.Name != StepVenv || venvStep.Status != StatusSkipped {
		t.Errorf("venv step = %+v, want skipped", venvStep)
	}

	// Install still happens against the existing environment
	if !runner.ran(filepath.Join(venvDir, "bin", "pip") + " install notebook") {
		t.Errorf("install should still run for an existing venv, calls: %v", runner.runCalls)
	}
}

func TestVenvCreationFailureStopsPipeline(t *testing.T) {
	venvDir := filepath.Join(t.TempDir(), "jupyter-venv")

	runner := &fakeRunner{
		binaries: map[string]string{"python3": "/usr/bin/python3"},
		outputs: map[string]string{
			"python3 --version":    "Python 3.12.3",
			"dpkg -s python3-venv": "Status: install ok installed",
		},
		runErrs: map[string]error{
			"python3 -m venv " + venvDir: errors.New("exit status 1"),
		},
	}

	p, _ := newTestPipeline(t, Options{
		Variant:  VariantVenv,
		VenvDir:  venvDir,
		Package:  "notebook",
		GOOS:     "linux",
		Platform: &ubuntuConstants,
	}, runner)

	results, err := p.Run(context.Background())
	if err == nil {
		t.Fatal("Run should fail when venv creation fails")
	}

	last := results[len(results)-1]
	if last.Name != StepVenv || last.Status != StatusFailed {
		t.Errorf("final step = %+v, want failed venv step", last)
	}

	for _, call := range runner.runCalls {
		if strings.Contains(call, "install notebook") {
			t.Errorf("no install should run after venv creation fails, calls: %v", runner.runCalls)
		}
	}
}

func TestMissingPipOnMacStopsWithGuidance(t *testing.T) {
	runner := &fakeRunner{
		binaries: map[string]string{"python3": "/opt/homebrew/bin/python3"},
		outputs: map[string]string{
			"python3 --version": "Python 3.12.3",
		},
	}

	p, out := newTestPipeline(t, Options{
		Variant:  VariantSystem,
		Package:  "notebook",
		GOOS:     "darwin",
		Platform: &macosConstants,
	}, runner)

	results, err := p.Run(context.Background())
	if err == nil {
		t.Fatal("Run should fail when pip3 is missing on darwin")
	}

	last := results[len(results)-1]
	if last.Name != StepPip || last.Status != StatusFailed {
		t.Errorf("final step = %+v, want failed pip step", last)
	}

	if !strings.Contains(out.String(), "ensurepip") {
		t.Errorf("missing pip on macOS should print manual remedy, got:\n%s", out.String())
	}

	for _, call := range runner.runCalls {
		if strings.Contains(call, "install notebook") {
			t.Errorf("no install should run after pip step fails, calls: %v", runner.runCalls)
		}
	}
}

func TestMissingPipOnLinuxInstallsDistroPackage(t *testing.T) {
	runner := &fakeRunner{
		binaries: map[string]string{"python3": "/usr/bin/python3"},
		outputs: map[string]string{
			"python3 --version":    "Python 3.12.3",
			"dpkg -s python3-venv": "Status: install ok installed",
		},
	}

	p, _ := newTestPipeline(t, Options{
		Variant:  VariantSystem,
		Package:  "notebook",
		GOOS:     "linux",
		Platform: &ubuntuConstants,
	}, runner)

	_, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if !runner.ran("sudo apt-get install -y python3-pip") {
		t.Errorf("expected pip distro package install, calls: %v", runner.runCalls)
	}
}

func TestUnsupportedOSFailsBeforeAnyCommand(t *testing.T) {
	runner := &fakeRunner{}

	p, out := newTestPipeline(t, Options{
		Variant:  VariantSystem,
		Package:  "notebook",
		GOOS:     "windows",
		Platform: &constants.PlatformConstants{Family: "windows", PackageManager: "winget"},
	}, runner)

	results, err := p.Run(context.Background())
	if !errors.Is(err, ErrUnsupportedOS) {
		t.Fatalf("Run error = %v, want ErrUnsupportedOS", err)
	}

	if len(results) != 1 {
		t.Fatalf("got %d step results, want 1", len(results))
	}
	if len(runner.runCalls) != 0 {
		t.Errorf("no commands should run on an unsupported OS, calls: %v", runner.runCalls)
	}

	for _, line := range UnsupportedOSLines("windows") {
		if !strings.Contains(out.String(), line) {
			t.Errorf("output missing diagnostic line %q, got:\n%s", line, out.String())
		}
	}
}

func TestPackageInstallFailure(t *testing.T) {
	runner := &fakeRunner{
		binaries: map[string]string{"python3": "/usr/bin/python3", "pip3": "/usr/bin/pip3"},
		outputs: map[string]string{
			"python3 --version":    "Python 3.12.3",
			"pip3 --version":       "pip 24.0",
			"dpkg -s python3-venv": "Status: install ok installed",
		},
		runErrs: map[string]error{
			"pip3 install notebook": errors.New("exit status 1"),
		},
	}

	p, out := newTestPipeline(t, Options{
		Variant:  VariantSystem,
		Package:  "notebook",
		GOOS:     "linux",
		Platform: &ubuntuConstants,
	}, runner)

	results, err := p.Run(context.Background())
	if err == nil {
		t.Fatal("Run should fail when the package install fails")
	}

	last := results[len(results)-1]
	if last.Name != StepInstall || last.Status != StatusFailed {
		t.Errorf("final step = %+v, want failed install step", last)
	}

	if !strings.Contains(out.String(), "Failed to install notebook") {
		t.Errorf("install failure message missing, got:\n%s", out.String())
	}
}
