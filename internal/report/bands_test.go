package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Default thresholds used across stage tests: mean 0.5, sigma 0.1.
const (
	testLow  = 0.4
	testHigh = 0.6
)

// testDoc builds a single-package document from value strings.
func testDoc(values ...string) *Document {
	classes := make([]ClassDoc, len(values))

	for i, value := range values {
		classes[i] = ClassDoc{ID: "Class" + string(rune('A'+i)), Value: value}
	}

	return &Document{
		Metric:   "TCC",
		Title:    "Tight Class Cohesion",
		App:      "app",
		Packages: []PackageDoc{{ID: "com.example", Classes: classes}},
	}
}

func TestBandsStage_Classification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  Band
	}{
		{name: "below low", value: "0.3", want: BandBelow},
		{name: "inside band", value: "0.5", want: BandWithin},
		{name: "above high", value: "0.7", want: BandAbove},
		{name: "low boundary inclusive", value: "0.4", want: BandWithin},
		{name: "high boundary inclusive", value: "0.6", want: BandWithin},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			stage := newBandsStage(testLow, testHigh)

			out, err := stage.Apply(testDoc(tc.value))
			require.NoError(t, err)

			assert.Equal(t, tc.want, out.Packages[0].Classes[0].Band)
		})
	}
}

func TestBandsStage_NonNumericPassThrough(t *testing.T) {
	t.Parallel()

	stage := newBandsStage(testLow, testHigh)

	out, err := stage.Apply(testDoc("NaN", "not-a-number", "0.5"))
	require.NoError(t, err)

	assert.Empty(t, out.Packages[0].Classes[0].Band)
	assert.Empty(t, out.Packages[0].Classes[1].Band)
	assert.Equal(t, BandWithin, out.Packages[0].Classes[2].Band)
}

func TestBandsStage_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	doc := testDoc("0.7")
	stage := newBandsStage(testLow, testHigh)

	_, err := stage.Apply(doc)
	require.NoError(t, err)

	assert.Empty(t, doc.Packages[0].Classes[0].Band)
}
