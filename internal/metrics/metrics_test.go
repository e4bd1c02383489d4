package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/classgauge/internal/report"
	"github.com/Sumatoshi-tech/classgauge/internal/skeleton"
)

const testMetricName = "TCC"

func testSkeleton() *skeleton.Skeleton {
	return &skeleton.Skeleton{
		App: skeleton.App{
			ID: "com.example:app",
			Packages: []skeleton.Package{
				{
					ID: "com.example",
					Classes: []skeleton.Class{
						{ID: "Foo", Attributes: map[string]string{testMetricName: "0.5"}},
						{ID: "Bare"},
					},
				},
			},
		},
	}
}

func TestResolve_KnownMetric(t *testing.T) {
	t.Parallel()

	transform, err := Resolve(testMetricName)
	require.NoError(t, err)

	assert.NotNil(t, transform)
}

func TestResolve_UnknownMetricIsConfigurationError(t *testing.T) {
	t.Parallel()

	_, err := Resolve("NOPE")
	require.Error(t, err)

	assert.ErrorIs(t, err, report.ErrConfiguration)
	assert.ErrorContains(t, err, "metrics/NOPE")
}

func TestNames_SortedAndComplete(t *testing.T) {
	t.Parallel()

	names := Names()

	assert.Len(t, names, len(builtin))
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, testMetricName)
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	desc, ok := Describe(testMetricName)
	require.True(t, ok)
	assert.Equal(t, "Tight Class Cohesion", desc.Title)

	_, ok = Describe("NOPE")
	assert.False(t, ok)
}

func TestTransform_ProjectsAttribute(t *testing.T) {
	t.Parallel()

	transform, err := Resolve(testMetricName)
	require.NoError(t, err)

	doc, err := transform(testSkeleton(), nil)
	require.NoError(t, err)

	assert.Equal(t, testMetricName, doc.Metric)
	assert.Equal(t, "com.example:app", doc.App)
	require.Len(t, doc.Packages, 1)
	require.Len(t, doc.Packages[0].Classes, 2)
	assert.Equal(t, "0.5", doc.Packages[0].Classes[0].Value)
}

func TestTransform_MissingAttributeDoesNotQualify(t *testing.T) {
	t.Parallel()

	transform, err := Resolve(testMetricName)
	require.NoError(t, err)

	doc, err := transform(testSkeleton(), nil)
	require.NoError(t, err)

	assert.Equal(t, "NaN", doc.Packages[0].Classes[1].Value)
}

func TestTransform_ParamsAreOpaquelyEchoed(t *testing.T) {
	t.Parallel()

	transform, err := Resolve(testMetricName)
	require.NoError(t, err)

	doc, err := transform(testSkeleton(), map[string]any{
		"title":         "Custom Title",
		"include-ctors": true,
	})
	require.NoError(t, err)

	assert.Equal(t, "Custom Title", doc.Title)
	assert.Equal(t, "true", doc.Params["include-ctors"])
	assert.Equal(t, "Custom Title", doc.Params["title"])
}

func TestTransform_DefaultTitle(t *testing.T) {
	t.Parallel()

	transform, err := Resolve(testMetricName)
	require.NoError(t, err)

	doc, err := transform(testSkeleton(), map[string]any{})
	require.NoError(t, err)

	assert.Equal(t, "Tight Class Cohesion", doc.Title)
}
