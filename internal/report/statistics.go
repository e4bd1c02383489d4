package report

import "math"

// augmentStatistics appends a summary-statistics node to the document. It
// only adds: existing value, band, range and bar data is carried over
// untouched. The augmenter is total over any document the stage fold can
// produce, so it cannot fail; a structurally broken document is caught by
// the schema gate instead.
func augmentStatistics(doc *Document) *Document {
	next := doc.Clone()

	var (
		total      int
		qualifying int
		sum        float64
		defects    int
	)

	for _, pkg := range next.Packages {
		for _, cls := range pkg.Classes {
			total++

			value, ok := parseValue(cls.Value)
			if !ok {
				continue
			}

			qualifying++
			sum += value

			if cls.Band != "" && cls.Band != BandWithin {
				defects++
			}
		}
	}

	stats := &Statistics{Total: total, Qualifying: qualifying}

	if qualifying > 0 {
		stats.Mean = sum / float64(qualifying)

		var variance float64

		for _, pkg := range next.Packages {
			for _, cls := range pkg.Classes {
				value, ok := parseValue(cls.Value)
				if !ok {
					continue
				}

				diff := value - stats.Mean
				variance += diff * diff
			}
		}

		stats.Sigma = math.Sqrt(variance / float64(qualifying))
		stats.Defects = float64(defects) / float64(qualifying)
	}

	next.Statistics = stats

	return next
}
