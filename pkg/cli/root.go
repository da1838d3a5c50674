// Package cli implements the backofficed command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "backofficed",
	Short: "backofficed is the TradingGrow admin back office API",
	Long: `backofficed serves the session-gated admin API of the TradingGrow
stock-screening product: user directory management, the stock catalog, and
the subscription upgrade request workflow.

Configuration can be provided via flags or a YAML/JSON configuration file.`,
	SilenceUsage:  true,
	SilenceErrors: true, // Errors are handled in Execute()
}

// Execute runs the CLI. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
