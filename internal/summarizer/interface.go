package summarizer

import "context"

// Summarizer condenses extracted paper text into a fixed number of points
// in the target language.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}
