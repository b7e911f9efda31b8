package cli

import (
	"fmt"
	"io"

	"github.com/croissant-tools/croissant/internal/validation"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a Croissant metadata document",
	Long: `Validate a Croissant metadata document against the vocabulary's structural rules.

Walks the document and applies every rule in the ruleset, collecting errors
and warnings with precise location paths. All rules run on every pass, so a
single validation reports every defect at once. Warnings never fail the
verdict; errors do.

Exit Codes:
  0 - Success (no errors found)
  1 - Validation failed (document has errors)
  2 - Operation failed (file unreadable)
  3 - Invalid arguments`,
	Example: `  # Validate a document
  croissant validate metadata.jsonld`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidateCommand(args, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// runValidateCommand executes the validate command.
func runValidateCommand(args []string, out, errOut io.Writer) error {
	issues, err := validation.New().ValidateFile(args[0])
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return NewExitError(ExitOperationFailed)
	}

	return reportVerdict(issues, out)
}

// reportVerdict prints the validation report and verdict, returning the
// command error when the verdict failed. All findings go to out so piped
// runs capture the complete report in one stream.
func reportVerdict(issues *validation.Issues, out io.Writer) error {
	if report := issues.Report(); report != "" {
		fmt.Fprintln(out, report)
		fmt.Fprintln(out)
	}

	if issues.HasErrors() {
		red := color.New(color.FgRed).SprintFunc()
		fmt.Fprintf(out, "%s Validation failed with %d error(s).\n", red("✗"), issues.ErrorCount())
		return NewExitError(ExitValidationFailed)
	}

	if issues.HasWarnings() {
		yellow := color.New(color.FgYellow).SprintFunc()
		fmt.Fprintf(out, "%s Validation passed with %d warning(s).\n", yellow("✓"), issues.WarningCount())
		return nil
	}

	green := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintf(out, "%s Validation passed with no issues.\n", green("✓"))
	return nil
}
