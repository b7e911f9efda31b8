package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/croissant-tools/croissant/internal/checksum"
	"github.com/croissant-tools/croissant/internal/config"
	"github.com/croissant-tools/croissant/internal/croissant"
	"github.com/croissant-tools/croissant/internal/progress"
	"github.com/croissant-tools/croissant/internal/tabular"
	"github.com/croissant-tools/croissant/internal/validation"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	generateOutputFlag   string
	generateValidateFlag bool
	generateInfoFlag     string
)

var generateCmd = &cobra.Command{
	Use:   "generate <csv-file>",
	Short: "Generate Croissant metadata from a CSV file",
	Long: `Generate Croissant metadata from a CSV file.

Reads the CSV headers and rows, infers a data type for every column from its
values, hashes the file content, and assembles a complete Croissant JSON-LD
document describing the dataset.

Output:
  - With -o: the document is written to the given file
  - Without -o and without -v: the document is written to the configured
    default output path (config file or CROISSANT_OUTPUT)
  - With -v: the document is validated and the verdict reported; -v without
    -o validates only and persists nothing

Exit Codes:
  0 - Success
  1 - Validation failed (-v found errors)
  2 - Operation failed (unreadable source, write failure)
  3 - Invalid arguments`,
	Example: `  # Write metadata next to the data
  croissant generate data.csv -o data.jsonld

  # Validate the generated document without persisting it
  croissant generate data.csv -v

  # Merge operator-supplied dataset properties into the document
  croissant generate data.csv -o data.jsonld --info dataset.yaml`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		return runGenerateCommand(args, configPath, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&generateOutputFlag, "output", "o", "", "Output JSON-LD file")
	generateCmd.Flags().BoolVarP(&generateValidateFlag, "validate", "v", false, "Validate the generated document and report the verdict")
	generateCmd.Flags().StringVar(&generateInfoFlag, "info", "", "YAML file with dataset properties to merge into the document")
}

// runGenerateCommand executes the generate command.
func runGenerateCommand(args []string, configPath string, out, errOut io.Writer) error {
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(errOut, "Error loading config: %v\n", err)
		return NewExitError(ExitInvalidArguments)
	}

	var info *croissant.DatasetInfo
	if generateInfoFlag != "" {
		info, err = croissant.LoadDatasetInfo(generateInfoFlag)
		if err != nil {
			fmt.Fprintf(errOut, "Error loading dataset info: %v\n", err)
			return NewExitError(ExitInvalidArguments)
		}
	}

	csvPath := args[0]

	// Resolve the output target before doing any work. The configured
	// default applies only when no explicit output is given; -v without -o
	// validates without persisting anything.
	writePath := generateOutputFlag
	if writePath == "" && !generateValidateFlag {
		writePath = cfg.Output
	}

	totalSteps := 3
	if writePath != "" {
		totalSteps++
	}
	if generateValidateFlag {
		totalSteps++
	}

	display := progress.NewStepDisplay(progress.DetectTerminalCapabilities(os.Stderr), errOut)
	defer display.StopSpinner()

	stepNumber := 0
	nextStep := func(name string) progress.StepInfo {
		stepNumber++
		step := progress.StepInfo{Name: name, Number: stepNumber, TotalSteps: totalSteps}
		display.StartStep(step)
		return step
	}

	// Read the table
	readStep := nextStep("Reading " + csvPath)
	table, err := tabular.ReadFile(csvPath)
	if err != nil {
		display.FailStep(readStep)
		fmt.Fprintf(errOut, "Error generating metadata: %v\n", err)
		return NewExitError(ExitOperationFailed)
	}
	fileInfo, err := os.Stat(csvPath)
	if err != nil {
		display.FailStep(readStep)
		fmt.Fprintf(errOut, "Error generating metadata: %v\n", err)
		return NewExitError(ExitOperationFailed)
	}
	display.CompleteStep(readStep)

	// Infer a data type for every column
	inferStep := nextStep("Inferring column types")
	types := make([]croissant.DataType, len(table.Columns))
	for i, column := range table.Columns {
		types[i] = croissant.InferColumnType(column)
	}
	display.CompleteStep(inferStep)

	// Hash the source content
	hashStep := nextStep("Hashing " + csvPath)
	digest, err := checksum.SumFile(csvPath)
	if err != nil {
		display.FailStep(hashStep)
		fmt.Fprintf(errOut, "Error generating metadata: %v\n", err)
		return NewExitError(ExitOperationFailed)
	}
	display.CompleteStep(hashStep)

	opts := croissant.BuildOptions{
		Version:       cfg.DatasetVersion,
		Language:      cfg.Language,
		DatePublished: time.Now().Format("2006-01-02"),
	}
	opts = info.Apply(opts)

	doc := croissant.BuildDocument(croissant.Source{
		FileName: filepath.Base(csvPath),
		Headers:  table.Headers,
		Types:    types,
		Size:     fileInfo.Size(),
		SHA256:   digest,
	}, opts)

	if writePath != "" {
		writeStep := nextStep("Writing " + writePath)
		if err := croissant.WriteFile(writePath, doc); err != nil {
			display.FailStep(writeStep)
			fmt.Fprintf(errOut, "Error generating metadata: %v\n", err)
			return NewExitError(ExitOperationFailed)
		}
		display.CompleteStep(writeStep)
		fmt.Fprintf(out, "Croissant metadata generated and saved to: %s\n", writePath)
	} else {
		fmt.Fprintln(out, "Croissant metadata generated.")
	}

	if generateValidateFlag {
		validateStep := nextStep("Validating document")
		issues := validation.New().Validate(doc)
		if issues.HasErrors() {
			display.FailStep(validateStep)
		} else {
			display.CompleteStep(validateStep)
		}
		return reportVerdict(issues, out)
	}

	return nil
}
