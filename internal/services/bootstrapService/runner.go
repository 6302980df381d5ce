package bootstrapservice

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Runner executes external commands. The bootstrap pipeline only talks to the
// system (package managers, python, pip) through this seam so tests can swap
// in a fake.
type Runner interface {
	// LookPath resolves a binary on the search path.
	LookPath(bin string) (string, error)
	// Run executes argv with stdout/stderr streamed to the terminal.
	Run(ctx context.Context, argv ...string) error
	// Output executes argv and returns its combined trimmed output.
	Output(ctx context.Context, argv ...string) (string, error)
}

type execRunner struct{}

// NewRunner returns a Runner backed by os/exec.
func NewRunner() Runner {
	return execRunner{}
}

func (execRunner) LookPath(bin string) (string, error) {
	return exec.LookPath(bin)
}

func (execRunner) Run(ctx context.Context, argv ...string) error {
	if len(argv) == 0 {
		return fmt.Errorf("empty command")
	}

	// #nosec G204 - argv comes from the platform constants table, not user input
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin

	return cmd.Run()
}

func (execRunner) Output(ctx context.Context, argv ...string) (string, error) {
	if len(argv) == 0 {
		return "", fmt.Errorf("empty command")
	}

	// #nosec G204 - argv comes from the platform constants table, not user input
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	out, err := cmd.CombinedOutput()

	return strings.TrimSpace(string(out)), err
}
