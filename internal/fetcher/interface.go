package fetcher

import "context"

// Fetcher downloads one document's raw bytes.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) ([]byte, error)
}
