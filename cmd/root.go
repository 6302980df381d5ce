// The root command for the CLI.
// This root 'composes' your subcommands and provides global config flags like --debug.
package cmd

import (
	// Import your CLI subcommands
	bootstrap "github.com/nbstrap/nbstrap/internal/commands/bootstrapCommand"
	check "github.com/nbstrap/nbstrap/internal/commands/checkCommand"
	history "github.com/nbstrap/nbstrap/internal/commands/historyCommand"
	"github.com/nbstrap/nbstrap/internal/commands/showCommand"
	whichcommand "github.com/nbstrap/nbstrap/internal/commands/whichCommand"

	// Import your CLI config
	"github.com/nbstrap/nbstrap/internal/config"
	"github.com/nbstrap/nbstrap/internal/version"

	"github.com/spf13/cobra"
)

var (
	// A path to a file to load configuration from
	cfgFile string
	// For enabling debug logging with --debug/-D
	debug bool
)

// Cobra root command
var rootCmd = &cobra.Command{
	// The command you run to call the compiled binary
	Use: "nbstrap",
	// A short description of what the command does
	Short: "Bootstrap Jupyter Notebook on a fresh machine.",
	// A longer description for the command
	Long: `Get Jupyter Notebook running on a fresh Linux or macOS machine:
detect the platform, install a Python 3 toolchain with the native package
manager if it's missing, and pip-install the notebook package (into the system
Python or an isolated virtual environment).`,
	// Adds a help menu you can display with --help/-h
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute the root Cobra command
func Execute() {
	// Import this into a main.go and call with cmd.Execute()
	cobra.CheckErr(rootCmd.Execute())
}

// Initialize the root command
func init() {
	// Add flags to the CLI's root command, making them 'global'
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (JSON/YAML/TOML/.env)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "D", false, "Enable debug logging")

	// Add other CLI subcommands
	rootCmd.AddCommand(bootstrap.NewInstallCommand())
	rootCmd.AddCommand(check.NewCheckCommand())
	rootCmd.AddCommand(history.NewHistoryCommand())
	rootCmd.AddCommand(showCommand.NewShowCmd())
	rootCmd.AddCommand(whichcommand.NewWhichCommand())
	rootCmd.AddCommand(version.NewSelfCommand())

	// Call the initConfig function when the root command is initialized
	cobra.OnInitialize(initConfig)
}

// Load configuration for CLI app
func initConfig() {
	config.LoadConfig(rootCmd.PersistentFlags(), cfgFile)
}
