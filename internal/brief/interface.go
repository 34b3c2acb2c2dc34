package brief

import (
	"context"

	"github.com/knmori/papercast/internal/outline"
)

// Writer persists a paper brief document next to the video artifacts.
type Writer interface {
	Write(ctx context.Context, title, summary string, sections outline.Outline, outPath string) error
}
