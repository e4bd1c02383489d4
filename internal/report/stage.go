package report

import "fmt"

// Stage is one post-processing pass over a report document. A stage is a
// pure function from document to document: it must not mutate its input and
// must not depend on state outside it.
type Stage interface {
	// Name returns the stage identifier, used in error messages.
	Name() string

	// Apply produces the next document from the previous one.
	Apply(doc *Document) (*Document, error)
}

// applyStages folds the stages over doc left to right. Each stage consumes
// the full output of the previous one; the first failure aborts the fold.
func applyStages(doc *Document, stages []Stage) (*Document, error) {
	current := doc

	for _, stage := range stages {
		next, err := stage.Apply(current)
		if err != nil {
			return nil, fmt.Errorf("%w: stage %s: %w", ErrProcessing, stage.Name(), err)
		}

		current = next
	}

	return current, nil
}
