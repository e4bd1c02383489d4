package report

// barsStageName identifies the bars stage.
const barsStageName = "bars"

// barsStage derives a proportional indicator in [0,1] for every qualifying
// value, normalized against the range recorded on the same document. It
// must run after the range stage. A flat range (max == min) yields
// full-width bars; a missing range yields none.
type barsStage struct{}

// newBarsStage builds the bars stage.
func newBarsStage() *barsStage { return &barsStage{} }

// Name returns the stage identifier.
func (s *barsStage) Name() string { return barsStageName }

// Apply returns a new document with bar indicators on qualifying classes.
func (s *barsStage) Apply(doc *Document) (*Document, error) {
	next := doc.Clone()

	if next.Range == nil {
		return next, nil
	}

	span := next.Range.Max - next.Range.Min

	for i := range next.Packages {
		for j := range next.Packages[i].Classes {
			cls := &next.Packages[i].Classes[j]

			value, ok := parseValue(cls.Value)
			if !ok {
				continue
			}

			bar := 1.0
			if span > 0 {
				bar = (value - next.Range.Min) / span
			}

			cls.Bar = &bar
		}
	}

	return next, nil
}
