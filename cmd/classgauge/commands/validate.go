package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/classgauge/internal/report"
)

const (
	validateCmdUse   = "validate <report.json>"
	validateCmdShort = "Validate a structured report artifact against the schema"
	validateArgCount = 1

	// exitCodeValidationFailure is the exit code for validation failures.
	exitCodeValidationFailure = 2
)

// NewValidateCommand creates the validate subcommand.
func NewValidateCommand() *cobra.Command {
	var nocolor bool

	cmd := &cobra.Command{
		Use:   validateCmdUse,
		Short: validateCmdShort,
		Long: `Re-validate a published structured artifact against the fixed report
schema. This is the same gate every publish passes before writing.`,
		Args: cobra.ExactArgs(validateArgCount),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0], nocolor)
		},
	}

	cmd.Flags().BoolVar(&nocolor, "no-color", false, "disable colored output")

	return cmd
}

func runValidate(inputPath string, nocolor bool) error {
	if nocolor {
		color.NoColor = true //nolint:reassign // intentional override of library global
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read input: %v\n", err)
		os.Exit(exitCodeValidationFailure)
	}

	var decoded any

	decodeErr := json.Unmarshal(data, &decoded)
	if decodeErr != nil {
		fmt.Fprintf(os.Stderr, "Invalid JSON in %s: %v\n", inputPath, decodeErr)
		os.Exit(exitCodeValidationFailure)
	}

	validateErr := report.Validate(data)
	if validateErr != nil {
		color.New(color.FgRed).Fprintf(os.Stdout, "Report is not valid (%s)\n", inputPath)
		fmt.Fprintf(os.Stdout, "  %v\n", validateErr)
		os.Exit(1)
	}

	color.New(color.FgGreen).Fprintf(os.Stdout, "Report is valid (%s)\n", inputPath)

	return nil
}
