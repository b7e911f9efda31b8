package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/croissant-tools/croissant/internal/build"
	"github.com/croissant-tools/croissant/internal/validation"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Display version information (v)",
	Long:    "Display version, commit, build date, Go version, and validation ruleset information for croissant",
	Example: `  # Show version info
  croissant version`,
	Run: func(cmd *cobra.Command, args []string) {
		printVersion(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// printVersion prints version information for scripting and bug reports
func printVersion(out io.Writer) {
	fmt.Fprintf(out, "%s %s\n", build.AppName, build.Version)
	fmt.Fprintf(out, "commit: %s\n", build.Commit)
	fmt.Fprintf(out, "built: %s\n", build.BuildDate)
	fmt.Fprintf(out, "go: %s\n", runtime.Version())
	fmt.Fprintf(out, "platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(out, "ruleset: %s\n", validation.RulesetVersion)
}
