package bootstrapservice

import (
	"fmt"
	"strings"

	"github.com/nbstrap/nbstrap/internal/constants"
)

// Plan is the immutable outcome of OS detection. Every later pipeline step
// reads from it; nothing mutates it after ResolvePlan returns.
type Plan struct {
	// "linux" or "darwin"
	OSFamily string
	// e.g. "Ubuntu", "macos"
	Distribution string
	// e.g. "apt", "dnf", "zypper", "brew"
	PackageManager string

	// Command prefix to install a named package, e.g. ["sudo", "apt-get", "install", "-y"]
	InstallCmd []string
	// Command to refresh the package index, e.g. ["sudo", "apt-get", "update"]
	UpdateCmd []string
	// Command prefix to query whether an OS package is installed, e.g.
	// ["dpkg", "-s"]. Nil when the platform has no useful query (brew).
	PkgQueryCmd []string

	// OS package names for the Python toolchain
	PythonPackage string
	PipPackage    string
	VenvPackage   string
}

// ErrUnsupportedOS is returned by ResolvePlan for platforms nbstrap cannot
// bootstrap. Callers print UnsupportedOSLines before exiting non-zero.
var ErrUnsupportedOS = fmt.Errorf("unsupported operating system")

// UnsupportedOSLines returns the two diagnostic lines printed for an
// unrecognized platform.
func UnsupportedOSLines(goos string) []string {
	return []string{
		fmt.Sprintf("Unsupported OS type: %s", goos),
		"nbstrap supports Linux (apt, dnf, zypper) and macOS (Homebrew).",
	}
}

// ResolvePlan classifies the host into a bootstrap plan from the detected
// platform constants. goos is runtime.GOOS (parameterized for tests).
func ResolvePlan(goos string, pc constants.PlatformConstants) (Plan, error) {
	switch goos {
	case "linux":
		return linuxPlan(pc)
	case "darwin":
		return darwinPlan(pc), nil
	default:
		return Plan{}, fmt.Errorf("%w: %s", ErrUnsupportedOS, goos)
	}
}

func linuxPlan(pc constants.PlatformConstants) (Plan, error) {
	plan := Plan{
		OSFamily:       "linux",
		Distribution:   pc.Distribution,
		PackageManager: pc.PackageManager,
		PythonPackage:  "python3",
		PipPackage:     "python3-pip",
		VenvPackage:    "python3-venv",
	}

	switch pc.PackageManager {
	case "apt":
		plan.InstallCmd = []string{"sudo", "apt-get", "install", "-y"}
		plan.UpdateCmd = []string{"sudo", "apt-get", "update"}
		plan.PkgQueryCmd = []string{"dpkg", "-s"}
	case "dnf":
		plan.InstallCmd = []string{"sudo", "dnf", "install", "-y"}
		plan.UpdateCmd = []string{"sudo", "dnf", "makecache"}
		plan.PkgQueryCmd = []string{"rpm", "-q"}
		// Fedora's python3 package ships the venv module
		plan.VenvPackage = "python3"
	case "zypper":
		plan.InstallCmd = []string{"sudo", "zypper", "install", "-y"}
		plan.UpdateCmd = []string{"sudo", "zypper", "refresh"}
		plan.PkgQueryCmd = []string{"rpm", "-q"}
		plan.VenvPackage = "python3"
	default:
		return Plan{}, fmt.Errorf("%w: linux distribution %q has no known package manager", ErrUnsupportedOS, pc.Distribution)
	}

	return plan, nil
}

func darwinPlan(pc constants.PlatformConstants) Plan {
	return Plan{
		OSFamily:       "darwin",
		Distribution:   pc.Distribution,
		PackageManager: "brew",
		InstallCmd:     []string{"brew", "install"},
		UpdateCmd:      []string{"brew", "update"},
		// No query command; 'brew install' is a no-op when already installed
		PkgQueryCmd:   nil,
		PythonPackage: "python3",
		PipPackage:    "python3",
		// The base python formula already provides venv support
		VenvPackage: "python3",
	}
}

// Describe renders the plan's invocation strings for 'show constants'.
func (p Plan) Describe() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Install command: %s\n", strings.Join(p.InstallCmd, " ")))
	b.WriteString(fmt.Sprintf("Update command:  %s\n", strings.Join(p.UpdateCmd, " ")))
	b.WriteString(fmt.Sprintf("Python package:  %s\n", p.PythonPackage))
	b.WriteString(fmt.Sprintf("Pip package:     %s\n", p.PipPackage))
	b.WriteString(fmt.Sprintf("Venv package:    %s\n", p.VenvPackage))

	return b.String()
}
