package whichcommand

import (
	"fmt"

	"github.com/nbstrap/nbstrap/internal/services/platformService/capabilities"
	"github.com/spf13/cobra"
)

func NewWhichCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "which [binary...]",
		Short: "A cross-platform wrapper that functions like UNIX 'which'.",
		Long: `Test a CLI command to see if it's installed/available, and if so return the path.

With no arguments, checks the Python toolchain binaries nbstrap cares about.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			bins := args
			if len(bins) == 0 {
				bins = []string{"python3", "pip3", "jupyter"}
			}

			for _, bin := range bins {
				path, err := capabilities.Which(bin)
				if err != nil {
					fmt.Printf("Command '%s' not found in PATH\n", bin)
					continue
				}

				fmt.Printf("Found command '%s' at path: %s\n", bin, path)
			}

			return nil
		},
	}

	return cmd
}
