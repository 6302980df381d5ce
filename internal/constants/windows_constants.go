//go:build windows
// +build windows

package constants

import (
	"os/exec"
	"strings"

	"github.com/nbstrap/nbstrap/internal/utils"
)

// platformConstants returns Windows constants. Windows is not a supported
// bootstrap target, but the detection still runs for 'show constants'.
func platformConstants() PlatformConstants {
	return PlatformConstants{
		PackageManager: detectWindowsPackageManager(),
		Family:         "windows",
		Distribution:   "windows",
		Release:        windowsRelease(),
	}
}

func detectWindowsPackageManager() string {
	if utils.IsCommandAvailable("scoop") {
		return "scoop"
	}
	if utils.IsCommandAvailable("winget") {
		return "winget"
	}
	if utils.IsCommandAvailable("choco") {
		return "choco"
	}
	return "winget"
}

func windowsRelease() string {
	out, err := exec.Command("cmd", "/C", "ver").Output()
	if err != nil {
		return "windows"
	}
	return strings.TrimSpace(string(out))
}
