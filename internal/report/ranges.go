package report

// rangeStageName identifies the range stage.
const rangeStageName = "range"

// rangeStage records the minimum and maximum qualifying value as
// document-level range metadata. With zero qualifying values the document
// keeps a nil range; the stage still succeeds and the bars stage treats the
// absent range as "no bars".
type rangeStage struct{}

// newRangeStage builds the range stage.
func newRangeStage() *rangeStage { return &rangeStage{} }

// Name returns the stage identifier.
func (s *rangeStage) Name() string { return rangeStageName }

// Apply returns a new document with the observed value range recorded.
func (s *rangeStage) Apply(doc *Document) (*Document, error) {
	next := doc.Clone()
	next.Range = nil

	var rng *Range

	for _, pkg := range next.Packages {
		for _, cls := range pkg.Classes {
			value, ok := parseValue(cls.Value)
			if !ok {
				continue
			}

			if rng == nil {
				rng = &Range{Min: value, Max: value}

				continue
			}

			if value < rng.Min {
				rng.Min = value
			}

			if value > rng.Max {
				rng.Max = value
			}
		}
	}

	next.Range = rng

	return next, nil
}
