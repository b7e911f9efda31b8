// Package cli provides Cobra-based CLI commands for the croissant metadata
// tool. It defines the generate, validate, and version commands together
// with the exit-code handling shared by all of them.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "croissant",
	Short: "Tools for generating and validating Croissant metadata",
	Long: `Tools for generating and validating MLCommons Croissant metadata.

Croissant is a JSON-LD vocabulary for describing machine learning datasets.
This tool generates Croissant documents from CSV files, inferring a typed
schema from the column values, and validates existing documents against the
vocabulary's structural rules.`,
	Example: `  # Generate metadata for a CSV file
  croissant generate data.csv -o metadata.jsonld

  # Generate and validate in one pass without writing a file
  croissant generate data.csv -v

  # Validate an existing document
  croissant validate metadata.jsonld`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !isExitError(err) {
		// Cobra argument and flag errors arrive here unprinted because the
		// root command silences them. Commands print their own errors.
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", ".croissant/config.json", "Path to config file")
}
