package commands

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/classgauge/internal/metrics"
)

const (
	metricsCmdUse   = "metrics"
	metricsCmdShort = "List registered metric identifiers"
)

// NewMetricsCommand creates the metrics subcommand.
func NewMetricsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   metricsCmdUse,
		Short: metricsCmdShort,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runMetrics()
		},
	}
}

func runMetrics() error {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Metric", "Title", "Description"})

	names := metrics.Names()

	for _, name := range names {
		desc, ok := metrics.Describe(name)
		if !ok {
			continue
		}

		tbl.AppendRow(table.Row{desc.Name, desc.Title, desc.Description})
	}

	tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d metrics", len(names))})

	fmt.Fprintln(os.Stdout, tbl.Render())

	return nil
}
