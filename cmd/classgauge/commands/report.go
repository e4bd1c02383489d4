// Package commands implements the classgauge subcommands.
package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/classgauge/internal/config"
	"github.com/Sumatoshi-tech/classgauge/internal/metrics"
	"github.com/Sumatoshi-tech/classgauge/internal/report"
	"github.com/Sumatoshi-tech/classgauge/internal/skeleton"
)

const (
	reportCmdUse    = "report <skeleton.{json,yaml}>"
	reportCmdShort  = "Publish metric reports from a skeleton document"
	reportArgCount  = 1
	paramSplitParts = 2
)

// ErrBadParam is returned when a --param flag is not of the form key=value.
var ErrBadParam = errors.New("--param must be key=value")

// reportFlags collects the report command's flag values.
type reportFlags struct {
	configPath string
	output     string
	metricIDs  []string
	params     []string
	paramsFile string
	mean       float64
	sigma      float64
}

// NewReportCommand creates the report subcommand.
func NewReportCommand() *cobra.Command {
	var flags reportFlags

	cmd := &cobra.Command{
		Use:   reportCmdUse,
		Short: reportCmdShort,
		Long: `Load a skeleton document and publish one report per metric: a
schema-validated <metric>.json plus a rendered <metric>.html in the output
directory. Distinct metrics are published in parallel.`,
		Args: cobra.ExactArgs(reportArgCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, args[0], &flags)
		},
	}

	cmd.Flags().StringVar(&flags.configPath, "config", "", "path to config file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output directory for report artifacts")
	cmd.Flags().StringSliceVarP(&flags.metricIDs, "metric", "m", nil, "metric identifier to publish (repeatable; default: all)")
	cmd.Flags().StringArrayVar(&flags.params, "param", nil, "metric transform parameter key=value (repeatable)")
	cmd.Flags().StringVar(&flags.paramsFile, "params", "", "YAML file with metric transform parameters")
	cmd.Flags().Float64Var(&flags.mean, "mean", config.DefaultMean, "band mean")
	cmd.Flags().Float64Var(&flags.sigma, "sigma", config.DefaultSigma, "band sigma")

	return cmd
}

func runReport(cmd *cobra.Command, skeletonPath string, flags *reportFlags) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	applyFlagOverrides(cmd, cfg, flags)

	skel, err := skeleton.Load(skeletonPath)
	if err != nil {
		return err
	}

	params, err := loadParams(flags)
	if err != nil {
		return err
	}

	ids := cfg.Metrics
	if len(ids) == 0 {
		ids = metrics.Names()
	}

	slog.Info("publishing reports",
		"app", skel.App.ID,
		"classes", skel.ClassCount(),
		"metrics", len(ids),
		"output", cfg.Output)

	publishErr := publishAll(skel, ids, params, cfg)
	if publishErr != nil {
		return publishErr
	}

	color.New(color.FgGreen).Fprintf(os.Stdout, "Published %d reports for %s classes to %s\n",
		len(ids), humanize.Comma(int64(skel.ClassCount())), cfg.Output)

	return nil
}

// applyFlagOverrides lets explicitly set flags win over loaded config.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config, flags *reportFlags) {
	if cmd.Flags().Changed("output") {
		cfg.Output = flags.output
	}

	if cmd.Flags().Changed("metric") {
		cfg.Metrics = flags.metricIDs
	}

	if cmd.Flags().Changed("mean") {
		cfg.Mean = flags.mean
	}

	if cmd.Flags().Changed("sigma") {
		cfg.Sigma = flags.sigma
	}
}

// publishAll runs one report per metric identifier. Each report owns a
// cloned skeleton and writes a distinct artifact pair, so the instances
// run fully in parallel.
func publishAll(skel *skeleton.Skeleton, ids []string, params map[string]any, cfg *config.Config) error {
	var group errgroup.Group

	for _, id := range ids {
		group.Go(func() error {
			rep, err := report.New(skel.Clone(), id, metrics.Resolve,
				report.WithParams(params),
				report.WithBand(cfg.Mean, cfg.Sigma))
			if err != nil {
				return fmt.Errorf("metric %s: %w", id, err)
			}

			saveErr := rep.Save(cfg.Output)
			if saveErr != nil {
				return fmt.Errorf("metric %s: %w", id, saveErr)
			}

			slog.Info("report published", "metric", id)

			return nil
		})
	}

	return group.Wait()
}

// loadParams merges the --params file with --param overrides.
func loadParams(flags *reportFlags) (map[string]any, error) {
	params := map[string]any{}

	if flags.paramsFile != "" {
		data, err := os.ReadFile(flags.paramsFile)
		if err != nil {
			return nil, fmt.Errorf("read params file: %w", err)
		}

		unmarshalErr := yaml.Unmarshal(data, &params)
		if unmarshalErr != nil {
			return nil, fmt.Errorf("decode params file: %w", unmarshalErr)
		}
	}

	for _, pair := range flags.params {
		parts := strings.SplitN(pair, "=", paramSplitParts)
		if len(parts) != paramSplitParts || parts[0] == "" {
			return nil, fmt.Errorf("%w: %q", ErrBadParam, pair)
		}

		params[parts[0]] = parts[1]
	}

	return params, nil
}
