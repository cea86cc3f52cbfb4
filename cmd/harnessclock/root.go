// Package main provides the harnessclock command-line tool. It elaborates
// harness clock plans outside a full generator run, mainly for inspecting
// what a plan negotiates before committing to an elaboration.
package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "harnessclock",
	Short: "Elaborate and inspect harness clock plans.",
	Long: `harnessclock negotiates the clocks between a generated design and its ` +
		`simulation test harness: it loads an HCL clock plan, wires every requested ` +
		`clock with the selected source strategy, and reports the result.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		atexit.Exit(1)
	}
}

func main() {
	// Optional HARNESSCLOCK_* defaults from a local .env file.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not load .env", "error", err)
	}

	Execute()
	atexit.Exit(0)
}
