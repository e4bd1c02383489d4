package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBarsStage_NormalizesAgainstDocumentRange(t *testing.T) {
	t.Parallel()

	doc := testDoc("0.2", "0.9", "0.55")
	doc.Range = &Range{Min: 0.2, Max: 0.9}

	out, err := newBarsStage().Apply(doc)
	require.NoError(t, err)

	classes := out.Packages[0].Classes
	require.NotNil(t, classes[0].Bar)
	require.NotNil(t, classes[1].Bar)
	require.NotNil(t, classes[2].Bar)

	assert.InDelta(t, 0.0, *classes[0].Bar, 1e-9)
	assert.InDelta(t, 1.0, *classes[1].Bar, 1e-9)
	assert.InDelta(t, 0.5, *classes[2].Bar, 1e-9)
}

// Bars are computed from the range recorded on the same document version.
// Feeding a document whose range does not cover its values demonstrates the
// range-before-bars ordering dependency: the recorded range wins.
func TestBarsStage_UsesRecordedRangeNotValues(t *testing.T) {
	t.Parallel()

	doc := testDoc("0.5")
	doc.Range = &Range{Min: 0.0, Max: 1.0}

	out, err := newBarsStage().Apply(doc)
	require.NoError(t, err)

	bar := out.Packages[0].Classes[0].Bar
	require.NotNil(t, bar)
	assert.InDelta(t, 0.5, *bar, 1e-9)
}

func TestBarsStage_MissingRangeYieldsNoBars(t *testing.T) {
	t.Parallel()

	out, err := newBarsStage().Apply(testDoc("0.5"))
	require.NoError(t, err)

	assert.Nil(t, out.Packages[0].Classes[0].Bar)
}

func TestBarsStage_FlatRangeYieldsFullBars(t *testing.T) {
	t.Parallel()

	doc := testDoc("0.5", "0.5")
	doc.Range = &Range{Min: 0.5, Max: 0.5}

	out, err := newBarsStage().Apply(doc)
	require.NoError(t, err)

	for _, cls := range out.Packages[0].Classes {
		require.NotNil(t, cls.Bar)
		assert.InDelta(t, 1.0, *cls.Bar, 1e-9)
	}
}

func TestBarsStage_SkipsNonNumericValues(t *testing.T) {
	t.Parallel()

	doc := testDoc("NaN", "0.5")
	doc.Range = &Range{Min: 0.0, Max: 1.0}

	out, err := newBarsStage().Apply(doc)
	require.NoError(t, err)

	assert.Nil(t, out.Packages[0].Classes[0].Bar)
	assert.NotNil(t, out.Packages[0].Classes[1].Bar)
}
