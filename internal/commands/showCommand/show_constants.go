package showCommand

import (
	"fmt"
	"runtime"

	"github.com/nbstrap/nbstrap/internal/constants"
	bootstrapservice "github.com/nbstrap/nbstrap/internal/services/bootstrapService"

	"github.com/spf13/cobra"
)

func NewConstantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "constants",
		Short: "Show detected platform constants & the install plan built from them",
		Run: func(cmd *cobra.Command, args []string) {
			consts := constants.GetPlatformConstants()
			fmt.Printf("Family:          %s\n", consts.Family)
			fmt.Printf("Distribution:    %s\n", consts.Distribution)
			fmt.Printf("Release:         %s\n", consts.Release)
			fmt.Printf("Package Manager: %s\n", consts.PackageManager)

			plan, err := bootstrapservice.ResolvePlan(runtime.GOOS, consts)
			if err != nil {
				fmt.Println("\nNo install plan for this platform:")
				for _, line := range bootstrapservice.UnsupportedOSLines(runtime.GOOS) {
					fmt.Println(" ", line)
				}
				return
			}

			fmt.Println("\nInstall plan:")
			fmt.Println(plan.Describe())
		},
	}
}
