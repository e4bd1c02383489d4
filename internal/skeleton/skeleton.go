// Package skeleton defines the input document of the report pipeline: a tree
// of analysis units (application, packages, classes) where every class
// carries named raw metric values as decimal strings.
//
// A Skeleton is immutable by convention once loaded. Report instances that
// need a private copy must use Clone; the pipeline never mutates a skeleton
// in place.
package skeleton

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Supported skeleton file extensions.
const (
	extJSON = ".json"
	extYAML = ".yaml"
	extYML  = ".yml"
)

// ErrUnsupportedFormat is returned when a skeleton file has an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported skeleton format (want .json, .yaml or .yml)")

// ErrNoApp is returned when a skeleton file has no application node.
var ErrNoApp = errors.New("skeleton has no application node")

// Skeleton is the root of the input document.
type Skeleton struct {
	App App `json:"app" yaml:"app"`
}

// App is the analyzed application: an identifier plus its packages.
type App struct {
	ID       string    `json:"id"                 yaml:"id"`
	Packages []Package `json:"packages,omitempty" yaml:"packages,omitempty"`
}

// Package groups the classes of one package.
type Package struct {
	ID      string  `json:"id"                yaml:"id"`
	Classes []Class `json:"classes,omitempty" yaml:"classes,omitempty"`
}

// Class is one analysis unit. Attributes maps raw metric names to their
// values as decimal strings; a value that does not parse as a number (for
// example "NaN") marks a metric that could not be computed for this class.
type Class struct {
	ID         string            `json:"id"                   yaml:"id"`
	Attributes map[string]string `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// Load reads a skeleton document from path. The format is chosen by file
// extension: .json is decoded with encoding/json, .yaml/.yml with yaml.v3.
func Load(path string) (*Skeleton, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read skeleton: %w", err)
	}

	var skel Skeleton

	switch strings.ToLower(filepath.Ext(path)) {
	case extJSON:
		decodeErr := json.Unmarshal(data, &skel)
		if decodeErr != nil {
			return nil, fmt.Errorf("decode skeleton %s: %w", path, decodeErr)
		}
	case extYAML, extYML:
		decodeErr := yaml.Unmarshal(data, &skel)
		if decodeErr != nil {
			return nil, fmt.Errorf("decode skeleton %s: %w", path, decodeErr)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	if skel.App.ID == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoApp, path)
	}

	return &skel, nil
}

// Clone returns a deep copy of the skeleton. The copy shares no maps or
// slices with the original, so two report instances can hold independent
// skeletons.
func (s *Skeleton) Clone() *Skeleton {
	clone := &Skeleton{App: App{ID: s.App.ID}}

	if s.App.Packages == nil {
		return clone
	}

	clone.App.Packages = make([]Package, len(s.App.Packages))

	for i, pkg := range s.App.Packages {
		cp := Package{ID: pkg.ID}

		if pkg.Classes != nil {
			cp.Classes = make([]Class, len(pkg.Classes))

			for j, cls := range pkg.Classes {
				cc := Class{ID: cls.ID}

				if cls.Attributes != nil {
					cc.Attributes = make(map[string]string, len(cls.Attributes))

					for k, v := range cls.Attributes {
						cc.Attributes[k] = v
					}
				}

				cp.Classes[j] = cc
			}
		}

		clone.App.Packages[i] = cp
	}

	return clone
}

// ClassCount returns the number of classes across all packages.
func (s *Skeleton) ClassCount() int {
	count := 0

	for _, pkg := range s.App.Packages {
		count += len(pkg.Classes)
	}

	return count
}
