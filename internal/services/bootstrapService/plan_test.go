package bootstrapservice

import (
	"errors"
	"strings"
	"testing"

	"github.com/nbstrap/nbstrap/internal/constants"
)

func TestResolvePlanLinux(t *testing.T) {
	tests := []struct {
		name        string
		pc          constants.PlatformConstants
		wantInstall string
		wantUpdate  string
		wantQuery   string
		wantVenvPkg string
	}{
		{
			name:        "ubuntu apt",
			pc:          constants.PlatformConstants{Family: "linux", Distribution: "Ubuntu", PackageManager: "apt"},
			wantInstall: "sudo apt-get install -y",
			wantUpdate:  "sudo apt-get update",
			wantQuery:   "dpkg -s",
			wantVenvPkg: "python3-venv",
		},
		{
			name:        "fedora dnf",
			pc:          constants.PlatformConstants{Family: "linux", Distribution: "Fedora", PackageManager: "dnf"},
			wantInstall: "sudo dnf install -y",
			wantUpdate:  "sudo dnf makecache",
			wantQuery:   "rpm -q",
			wantVenvPkg: "python3",
		},
		{
			name:        "opensuse zypper",
			pc:          constants.PlatformConstants{Family: "linux", Distribution: "openSUSE", PackageManager: "zypper"},
			wantInstall: "sudo zypper install -y",
			wantUpdate:  "sudo zypper refresh",
			wantQuery:   "rpm -q",
			wantVenvPkg: "python3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := ResolvePlan("linux", tt.pc)
			if err != nil {
				t.Fatalf("ResolvePlan returned error: %v", err)
			}

			if got := strings.Join(plan.InstallCmd, " "); got != tt.wantInstall {
				t.Errorf("InstallCmd = %q, want %q", got, tt.wantInstall)
			}
			if got := strings.Join(plan.UpdateCmd, " "); got != tt.wantUpdate {
				t.Errorf("UpdateCmd = %q, want %q", got, tt.wantUpdate)
			}
			if got := strings.Join(plan.PkgQueryCmd, " "); got != tt.wantQuery {
				t.Errorf("PkgQueryCmd = %q, want %q", got, tt.wantQuery)
			}
			if plan.VenvPackage != tt.wantVenvPkg {
				t.Errorf("VenvPackage = %q, want %q", plan.VenvPackage, tt.wantVenvPkg)
			}
			if plan.OSFamily != "linux" {
				t.Errorf("OSFamily = %q, want linux", plan.OSFamily)
			}
		})
	}
}

func TestResolvePlanDarwin(t *testing.T) {
	pc := constants.PlatformConstants{Family: "darwin", Distribution: "macos", PackageManager: "brew"}

	plan, err := ResolvePlan("darwin", pc)
	if err != nil {
		t.Fatalf("ResolvePlan returned error: %v", err)
	}

	if got := strings.Join(plan.InstallCmd, " "); got != "brew install" {
		t.Errorf("InstallCmd = %q, want %q", got, "brew install")
	}
	if plan.PkgQueryCmd != nil {
		t.Errorf("PkgQueryCmd = %v, want nil for brew", plan.PkgQueryCmd)
	}
	if plan.PipPackage != "python3" {
		t.Errorf("PipPackage = %q, want python3", plan.PipPackage)
	}
}

func TestResolvePlanUnsupported(t *testing.T) {
	tests := []struct {
		name string
		goos string
		pc   constants.PlatformConstants
	}{
		{name: "windows", goos: "windows", pc: constants.PlatformConstants{Family: "windows"}},
		{name: "freebsd", goos: "freebsd", pc: constants.PlatformConstants{}},
		{name: "linux without package manager", goos: "linux", pc: constants.PlatformConstants{Family: "linux", Distribution: "Unknown"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolvePlan(tt.goos, tt.pc)
			if !errors.Is(err, ErrUnsupportedOS) {
				t.Fatalf("ResolvePlan error = %v, want ErrUnsupportedOS", err)
			}
		})
	}
}

func TestUnsupportedOSLines(t *testing.T) {
	lines := UnsupportedOSLines("plan9")

	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "plan9") {
		t.Errorf("first line %q should name the OS", lines[0])
	}
}
