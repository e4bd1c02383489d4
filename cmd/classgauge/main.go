// Package main provides the entry point for the classgauge CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/classgauge/cmd/classgauge/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "classgauge",
		Short: "Classgauge - per-class metric report generator",
		Long: `Classgauge turns a skeleton document of raw per-class metric values into
published metric reports: one schema-validated JSON artifact and one HTML
artifact per metric.

Commands:
  report    Publish metric reports from a skeleton document
  metrics   List registered metric identifiers
  validate  Validate a structured report artifact against the schema`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewReportCommand())
	rootCmd.AddCommand(commands.NewMetricsCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
