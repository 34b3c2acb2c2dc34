package outline

import "context"

// Builder decomposes a paper title and summary into the named sections.
type Builder interface {
	Build(ctx context.Context, title, summary string) (Outline, error)
}
