package showCommand

import (
	"fmt"

	platformservice "github.com/nbstrap/nbstrap/internal/services/platformService"
	"github.com/spf13/cobra"
)

func NewShowNetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "net",
		Short: "Show network-related platform information",
		Long:  `Shows network interfaces and gateway info from the current platform.`,
		Run: func(cmd *cobra.Command, args []string) {
			info, err := platformservice.GatherPlatformInfo()
			if err != nil {
				fmt.Println("Error:", err)
				return
			}

			fmt.Println(info.Format(true))
		},
	}

	return cmd
}
