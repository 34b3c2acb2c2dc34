package feed

import "context"

// Source lists candidate papers from the preprint feed, newest first.
type Source interface {
	Fetch(ctx context.Context, maxResults int) ([]Paper, error)
}
