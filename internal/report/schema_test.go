package report

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validDocument builds a document that conforms to the schema.
func validDocument() *Document {
	bar := 1.0

	return &Document{
		Metric: "LCOM5",
		Title:  "Lack of Cohesion in Methods 5",
		App:    "com.example:app",
		Packages: []PackageDoc{
			{
				ID: "com.example",
				Classes: []ClassDoc{
					{ID: "Foo", Value: "0.5", Band: BandWithin, Bar: &bar},
				},
			},
		},
		Range:      &Range{Min: 0.5, Max: 0.5},
		Statistics: &Statistics{Total: 1, Qualifying: 1, Mean: 0.5},
	}
}

func marshalDoc(t *testing.T, doc *Document) []byte {
	t.Helper()

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	return data
}

func TestValidate_ConformantDocument(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Validate(marshalDoc(t, validDocument())))
}

func TestValidate_Violations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(doc *Document)
	}{
		{
			name:   "missing app",
			mutate: func(doc *Document) { doc.App = "" },
		},
		{
			name:   "missing metric",
			mutate: func(doc *Document) { doc.Metric = "" },
		},
		{
			name:   "missing statistics",
			mutate: func(doc *Document) { doc.Statistics = nil },
		},
		{
			name:   "empty class value",
			mutate: func(doc *Document) { doc.Packages[0].Classes[0].Value = "" },
		},
		{
			name:   "invalid band",
			mutate: func(doc *Document) { doc.Packages[0].Classes[0].Band = "sideways" },
		},
		{
			name: "bar above one",
			mutate: func(doc *Document) {
				bar := 1.5
				doc.Packages[0].Classes[0].Bar = &bar
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			doc := validDocument()
			tc.mutate(doc)

			err := Validate(marshalDoc(t, doc))
			require.Error(t, err)

			assert.ErrorIs(t, err, ErrProcessing)
		})
	}
}

func TestValidate_AbsentRangeIsAllowed(t *testing.T) {
	t.Parallel()

	doc := validDocument()
	doc.Range = nil
	doc.Packages[0].Classes[0].Bar = nil

	assert.NoError(t, Validate(marshalDoc(t, doc)))
}

func TestValidate_RejectsUnknownJSON(t *testing.T) {
	t.Parallel()

	err := Validate([]byte(`{"unexpected": true}`))
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrProcessing)
}
