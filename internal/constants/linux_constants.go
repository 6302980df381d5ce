//go:build linux
// +build linux

package constants

import (
	"os"
	"strings"
)

// platformConstants detects the distro and returns the appropriate constants.
func platformConstants() PlatformConstants {
	content, err := os.ReadFile("/etc/os-release")
	if err != nil {
		// fallback generic Linux constants
		return PlatformConstants{
			Family:         "Unknown",
			Distribution:   "Unknown",
			Release:        "Unknown",
			PackageManager: "unknown",
		}
	}

	osRelease := string(content)

	// Detect distro by ID or ID_LIKE fields
	id := strings.ToLower(getOSReleaseField(osRelease, "ID"))
	idLike := strings.ToLower(getOSReleaseField(osRelease, "ID_LIKE"))
	release := getOSReleaseField(osRelease, "VERSION_ID")

	// Check per-distro overrides
	switch id {
	case "ubuntu":
		return ubuntuConstants(release)
	case "debian":
		return debianConstants(release)
	case "fedora":
		return fedoraConstants(release)
	case "opensuse", "opensuse-leap", "opensuse-tumbleweed":
		return openSUSEConstants(release)
		// Add more distros here
	}

	// If distro not matched, classify by family via ID_LIKE
	if strings.Contains(idLike, "debian") {
		return debianConstants(release)
	}
	if strings.Contains(idLike, "rhel") || strings.Contains(idLike, "fedora") {
		return fedoraConstants(release)
	}
	if strings.Contains(idLike, "suse") {
		return openSUSEConstants(release)
	}

	// Default fallback
	return PlatformConstants{
		Family:         "Unknown",
		Distribution:   id,
		Release:        release,
		PackageManager: "unknown",
	}
}
