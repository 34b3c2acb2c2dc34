package pipeline

import "context"

// Runner executes the paper-to-video pipeline.
type Runner interface {
	// Run processes the newest feed candidate end to end.
	Run(ctx context.Context) (*Result, error)

	// RunDocument processes one already-downloaded document, starting at
	// text extraction. Watch mode feeds dropped files through this.
	RunDocument(ctx context.Context, path string) (*Result, error)
}
