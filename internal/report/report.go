package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Sumatoshi-tech/classgauge/internal/skeleton"
)

// Band threshold defaults.
const (
	DefaultMean  = 0.5
	DefaultSigma = 0.1
)

// Artifact file suffixes. Both artifacts of one report share the metric
// identifier as base name.
const (
	StructuredSuffix = ".json"
	HumanSuffix      = ".html"
)

// Output permissions.
const (
	dirPerm  = 0o750
	filePerm = 0o644
)

// jsonIndent is the indentation of the structured artifact.
const jsonIndent = "  "

// Transform is a metric-specific pure transformation from a skeleton to a
// report document.
type Transform func(skel *skeleton.Skeleton, params map[string]any) (*Document, error)

// Resolver locates the transform for a metric identifier. It fails with a
// configuration error when no transform is registered under the
// identifier.
type Resolver func(metric string) (Transform, error)

// artifactWriter writes one artifact file. The indirection exists so tests
// can inject write failures between the two artifact writes.
type artifactWriter interface {
	WriteFile(path string, data []byte) error
}

// osWriter writes artifacts with os.WriteFile (truncate-and-write).
type osWriter struct{}

// WriteFile implements artifactWriter.
func (osWriter) WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, filePerm)
}

// Report is one report instance, bound to a (skeleton, metric) pair. It is
// immutable after construction and good for exactly one Save call target;
// re-saving overwrites the same artifact pair. Instances for distinct
// metrics may run in parallel without coordination; two instances writing
// the same artifact pair concurrently interleave undefined.
type Report struct {
	skel    *skeleton.Skeleton
	metric  string
	resolve Resolver
	params  map[string]any
	stages  []Stage
	writer  artifactWriter
}

// Option customizes a report instance.
type Option func(*options)

// options collects constructor knobs before stage wiring.
type options struct {
	params map[string]any
	mean   float64
	sigma  float64
	writer artifactWriter
}

// WithParams sets the parameter map handed opaquely to the metric
// transform.
func WithParams(params map[string]any) Option {
	return func(o *options) { o.params = params }
}

// WithBand overrides the band thresholds: values inside
// [mean-sigma, mean+sigma] are classified "within".
func WithBand(mean, sigma float64) Option {
	return func(o *options) {
		o.mean = mean
		o.sigma = sigma
	}
}

// withWriter swaps the artifact writer, for tests.
func withWriter(w artifactWriter) Option {
	return func(o *options) { o.writer = w }
}

// New builds a report instance for one (skeleton, metric) pair. A
// non-positive sigma is rejected up front as a configuration error.
func New(skel *skeleton.Skeleton, metric string, resolve Resolver, opts ...Option) (*Report, error) {
	o := options{
		params: map[string]any{},
		mean:   DefaultMean,
		sigma:  DefaultSigma,
		writer: osWriter{},
	}

	for _, opt := range opts {
		opt(&o)
	}

	if o.sigma <= 0 {
		return nil, fmt.Errorf("%w: sigma must be positive, got %v", ErrConfiguration, o.sigma)
	}

	return &Report{
		skel:    skel,
		metric:  metric,
		resolve: resolve,
		params:  o.params,
		stages: []Stage{
			newBandsStage(o.mean-o.sigma, o.mean+o.sigma),
			newRangeStage(),
			newBarsStage(),
		},
		writer: o.writer,
	}, nil
}

// Save runs the full pipeline and publishes both artifacts into targetDir:
// resolve the metric transform, apply it, fold the post-processing stages,
// append statistics, validate against the schema, then write the
// structured artifact followed by the human-readable one. Any failure
// before the first write leaves no artifacts; a failure between the writes
// leaves only the structured one.
func (r *Report) Save(targetDir string) error {
	transform, err := r.resolve(r.metric)
	if err != nil {
		return err
	}

	doc, err := transform(r.skel, r.params)
	if err != nil {
		return fmt.Errorf("%w: metric %s: %w", ErrProcessing, r.metric, err)
	}

	doc, err = applyStages(doc, r.stages)
	if err != nil {
		return err
	}

	doc = augmentStatistics(doc)

	data, err := json.MarshalIndent(doc, "", jsonIndent)
	if err != nil {
		return fmt.Errorf("%w: encode report: %w", ErrProcessing, err)
	}

	validateErr := Validate(data)
	if validateErr != nil {
		return validateErr
	}

	mkErr := os.MkdirAll(targetDir, dirPerm)
	if mkErr != nil {
		return fmt.Errorf("%w: create target dir: %w", ErrWrite, mkErr)
	}

	structuredPath := filepath.Join(targetDir, r.metric+StructuredSuffix)

	writeErr := r.writer.WriteFile(structuredPath, data)
	if writeErr != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, structuredPath, writeErr)
	}

	html, err := Render(doc)
	if err != nil {
		return err
	}

	humanPath := filepath.Join(targetDir, r.metric+HumanSuffix)

	writeErr = r.writer.WriteFile(humanPath, html)
	if writeErr != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, humanPath, writeErr)
	}

	return nil
}
