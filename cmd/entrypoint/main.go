package main

import (
	"github.com/nbstrap/nbstrap/internal/version"

	// Import the cmd directory with root.go
	"github.com/nbstrap/nbstrap/cmd"
)

func main() {
	// Check if an update is needed
	version.TrySelfUpgrade()

	// Call the root command
	cmd.Execute()
}
