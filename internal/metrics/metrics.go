// Package metrics holds the registry of metric transforms. Transforms are
// looked up under the fixed path "metrics/<identifier>"; an identifier with
// no registered transform is a configuration error, surfaced before any
// document processing.
package metrics

import (
	"fmt"
	"sort"

	"github.com/Sumatoshi-tech/classgauge/internal/report"
	"github.com/Sumatoshi-tech/classgauge/internal/skeleton"
)

// lookupPattern is the fixed resource naming convention for metric
// transforms.
const lookupPattern = "metrics/%s"

// paramTitle overrides the metric title in the produced document.
const paramTitle = "title"

// missingValue is the value assigned to classes that lack the metric's
// attribute. It does not parse as a number, so the post-processing stages
// leave such classes unclassified.
const missingValue = "NaN"

// Descriptor describes one built-in metric: the skeleton attribute it
// projects and its display metadata.
type Descriptor struct {
	Name        string
	Title       string
	Description string
}

// builtin is the registered metric set. Each entry projects the like-named
// class attribute out of the skeleton.
var builtin = map[string]Descriptor{
	"LCOM5": {"LCOM5", "Lack of Cohesion in Methods 5", "Revised lack-of-cohesion measure; lower is more cohesive."},
	"NHD":   {"NHD", "Normalized Hamming Distance", "Agreement between method parameter types; higher is more cohesive."},
	"MMAC":  {"MMAC", "Method-Method through Attributes Cohesion", "Average method similarity over shared attribute access."},
	"CAMC":  {"CAMC", "Cohesion Among Methods of Classes", "Parameter-type overlap between methods and constructors."},
	"CCM":   {"CCM", "Class Connection Metric", "Connectivity of the method call graph within a class."},
	"SCOM":  {"SCOM", "Sensitive Class Cohesion Metric", "Weighted pairwise method agreement over attributes."},
	"OCC":   {"OCC", "Optimistic Class Cohesion", "Reachability-based cohesion, optimistic variant."},
	"TCC":   {"TCC", "Tight Class Cohesion", "Share of directly connected method pairs."},
	"LCC":   {"LCC", "Loose Class Cohesion", "Share of directly or transitively connected method pairs."},
	"PCC":   {"PCC", "Pessimistic Class Cohesion", "Reachability-based cohesion, pessimistic variant."},
}

// Resolve locates the transform for a metric identifier. Unknown
// identifiers fail with a configuration error naming the missing resource.
func Resolve(metric string) (report.Transform, error) {
	desc, ok := builtin[metric]
	if !ok {
		return nil, fmt.Errorf("%w: transform not found: %s",
			report.ErrConfiguration, fmt.Sprintf(lookupPattern, metric))
	}

	return attributeTransform(desc), nil
}

// Names returns the registered metric identifiers, sorted.
func Names() []string {
	names := make([]string, 0, len(builtin))

	for name := range builtin {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Describe returns the descriptor for a registered metric identifier.
func Describe(metric string) (Descriptor, bool) {
	desc, ok := builtin[metric]

	return desc, ok
}

// attributeTransform builds the transform projecting one skeleton attribute
// into a report document. The parameter map is interpreted here and nowhere
// else: "title" overrides the display title, and every entry is echoed into
// the document's params node.
func attributeTransform(desc Descriptor) report.Transform {
	return func(skel *skeleton.Skeleton, params map[string]any) (*report.Document, error) {
		doc := &report.Document{
			Metric:   desc.Name,
			Title:    desc.Title,
			App:      skel.App.ID,
			Packages: make([]report.PackageDoc, len(skel.App.Packages)),
		}

		if title, ok := params[paramTitle].(string); ok && title != "" {
			doc.Title = title
		}

		if len(params) > 0 {
			doc.Params = make(map[string]string, len(params))

			for key, value := range params {
				doc.Params[key] = fmt.Sprint(value)
			}
		}

		for i, pkg := range skel.App.Packages {
			docPkg := report.PackageDoc{
				ID:      pkg.ID,
				Classes: make([]report.ClassDoc, len(pkg.Classes)),
			}

			for j, cls := range pkg.Classes {
				value, ok := cls.Attributes[desc.Name]
				if !ok || value == "" {
					value = missingValue
				}

				docPkg.Classes[j] = report.ClassDoc{ID: cls.ID, Value: value}
			}

			doc.Packages[i] = docPkg
		}

		return doc, nil
	}
}
