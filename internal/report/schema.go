package report

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// schemaJSON is the fixed structural contract of the structured artifact.
// Changing it is a breaking change for downstream consumers.
//
//go:embed report-schema.json
var schemaJSON []byte

// loadSchema compiles the embedded schema once per process. The compiled
// schema is read-only and shared across concurrently running reports.
var loadSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("compile report schema: %w", err)
	}

	return schema, nil
})

// Validate checks serialized report JSON against the fixed schema. A
// non-conformant document yields a processing error listing every
// violation.
func Validate(data []byte) error {
	schema, err := loadSchema()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrProcessing, err)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("%w: validate report: %w", ErrProcessing, err)
	}

	if result.Valid() {
		return nil
	}

	violations := make([]string, 0, len(result.Errors()))

	for _, verr := range result.Errors() {
		violations = append(violations, fmt.Sprintf("%s: %s", verr.Field(), verr.Description()))
	}

	return fmt.Errorf("%w: report does not conform to schema: %s",
		ErrProcessing, strings.Join(violations, "; "))
}
