package slides

import "context"

// Renderer draws one slide image per outline section.
type Renderer interface {
	Render(ctx context.Context, section, text, outPath string) error
}
