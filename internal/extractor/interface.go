package extractor

import "context"

// Extractor converts raw document bytes to plain text, best effort.
type Extractor interface {
	Extract(ctx context.Context, data []byte) string
}
