package report

import (
	"math"
	"strconv"
)

// bandsStageName identifies the banding stage.
const bandsStageName = "bands"

// bandsStage classifies every qualifying class value as below, within or
// above the expected band. Boundaries are inclusive: low <= v <= high is
// within. Non-numeric values are left unclassified.
type bandsStage struct {
	low  float64
	high float64
}

// newBandsStage builds the banding stage from precomputed thresholds.
func newBandsStage(low, high float64) *bandsStage {
	return &bandsStage{low: low, high: high}
}

// Name returns the stage identifier.
func (s *bandsStage) Name() string { return bandsStageName }

// Apply returns a new document with every qualifying class banded.
func (s *bandsStage) Apply(doc *Document) (*Document, error) {
	next := doc.Clone()

	for i := range next.Packages {
		for j := range next.Packages[i].Classes {
			cls := &next.Packages[i].Classes[j]

			value, ok := parseValue(cls.Value)
			if !ok {
				continue
			}

			switch {
			case value < s.low:
				cls.Band = BandBelow
			case value > s.high:
				cls.Band = BandAbove
			default:
				cls.Band = BandWithin
			}
		}
	}

	return next, nil
}

// parseValue parses a class value string. NaN and unparseable strings do
// not qualify.
func parseValue(raw string) (float64, bool) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}

	return value, true
}
