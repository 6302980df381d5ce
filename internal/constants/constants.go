package constants

// PlatformConstants holds platform-specific constant values detected at runtime.
// These drive which package manager nbstrap shells out to during a bootstrap.
type PlatformConstants struct {
	// e.g. "Debian", "RedHat", "darwin"
	Family string
	// e.g. "Ubuntu", "Fedora", "macos"
	Distribution string
	// e.g. "24.04", "42", "14.4"
	Release string
	// e.g. "apt", "dnf", "zypper", "brew"
	PackageManager string
}

// GetPlatformConstants returns platform-specific constants.
// It calls the platform-specific implementation.
func GetPlatformConstants() PlatformConstants {
	return platformConstants()
}
