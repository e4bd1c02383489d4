// Package report implements the metric report pipeline: a metric transform
// shapes a skeleton into a report document, three fixed post-processing
// stages (bands, range, bars) refine it, summary statistics are appended,
// and the validated result is published as a JSON artifact plus an HTML
// artifact.
package report

// Band classifies a value against the report's band thresholds.
type Band string

// Band values. Empty means the value did not qualify for classification.
const (
	BandBelow  Band = "below"
	BandWithin Band = "within"
	BandAbove  Band = "above"
)

// Document is the report document produced by the pipeline. Every stage
// consumes a document and returns a new one; documents are never mutated
// after being handed to the next stage.
type Document struct {
	// Metric is the metric identifier this document reports.
	Metric string `json:"metric"`

	// Title is the human-readable metric name.
	Title string `json:"title"`

	// App is the analyzed application identifier.
	App string `json:"app"`

	// Params echoes the parameter map entries the metric transform chose
	// to surface, as strings.
	Params map[string]string `json:"params,omitempty"`

	// Packages holds the per-package class reports.
	Packages []PackageDoc `json:"packages"`

	// Range is the observed value range, recorded by the range stage.
	// Nil when the document holds no qualifying numeric values.
	Range *Range `json:"range,omitempty"`

	// Statistics is appended by the statistics augmenter.
	Statistics *Statistics `json:"statistics,omitempty"`
}

// PackageDoc is the report view of one package.
type PackageDoc struct {
	ID      string     `json:"id"`
	Classes []ClassDoc `json:"classes"`
}

// ClassDoc is the report view of one class. Value is the raw metric value
// as a decimal string; non-numeric values (such as "NaN") pass through the
// stages unclassified.
type ClassDoc struct {
	ID    string   `json:"id"`
	Value string   `json:"value"`
	Band  Band     `json:"band,omitempty"`
	Bar   *float64 `json:"bar,omitempty"`
}

// Range holds the minimum and maximum qualifying value in the document.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Statistics is the summary node appended by the augmenter.
type Statistics struct {
	// Total is the number of classes in the document.
	Total int `json:"total"`

	// Qualifying is the number of classes with a numeric value.
	Qualifying int `json:"qualifying"`

	// Mean and Sigma describe the qualifying values.
	Mean  float64 `json:"mean"`
	Sigma float64 `json:"sigma"`

	// Defects is the share of qualifying classes banded outside "within",
	// in [0,1]. Zero when nothing qualifies.
	Defects float64 `json:"defects"`
}

// percentScale converts a [0,1] share to a percentage.
const percentScale = 100

// DefectsPercent returns the defect share as a percentage for display.
func (s *Statistics) DefectsPercent() float64 {
	return s.Defects * percentScale
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	clone := &Document{
		Metric: d.Metric,
		Title:  d.Title,
		App:    d.App,
	}

	if d.Params != nil {
		clone.Params = make(map[string]string, len(d.Params))

		for k, v := range d.Params {
			clone.Params[k] = v
		}
	}

	clone.Packages = make([]PackageDoc, len(d.Packages))

	for i, pkg := range d.Packages {
		cp := PackageDoc{ID: pkg.ID, Classes: make([]ClassDoc, len(pkg.Classes))}

		for j, cls := range pkg.Classes {
			cc := cls

			if cls.Bar != nil {
				bar := *cls.Bar
				cc.Bar = &bar
			}

			cp.Classes[j] = cc
		}

		clone.Packages[i] = cp
	}

	if d.Range != nil {
		rng := *d.Range
		clone.Range = &rng
	}

	if d.Statistics != nil {
		stats := *d.Statistics
		clone.Statistics = &stats
	}

	return clone
}

// ClassCount returns the number of classes across all packages.
func (d *Document) ClassCount() int {
	count := 0

	for _, pkg := range d.Packages {
		count += len(pkg.Classes)
	}

	return count
}
