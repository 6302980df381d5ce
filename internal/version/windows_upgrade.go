package version

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// RunWindowsSelfUpgrade swaps the running binary on Windows, where a process
// cannot rename over its own executable. It writes a small batch script that
// waits for this process to exit, moves "<exe>.new" into place, and relaunches.
func RunWindowsSelfUpgrade(exePath, newPath string) error {
	scriptPath := filepath.Join(os.TempDir(), "nbstrap-upgrade.bat")

	script := fmt.Sprintf(`@echo off
:loop
tasklist /FI "PID eq %d" 2>NUL | find "%d" >NUL
if not errorlevel 1 (
    timeout /T 1 /NOBREAK >NUL
    goto loop
)
move /Y "%s" "%s" >NUL
start "" "%s"
del "%%~f0"
`, os.Getpid(), os.Getpid(), newPath, exePath, exePath)

	if err := os.WriteFile(scriptPath, []byte(script), 0700); err != nil {
		return fmt.Errorf("failed to write upgrade script: %w", err)
	}

	cmd := exec.Command("cmd", "/C", "start", "/MIN", "", scriptPath)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to launch upgrade script: %w", err)
	}

	return nil
}
