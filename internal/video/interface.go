package video

import "context"

// Assembler muxes ordered slide images and narration audio into one video.
type Assembler interface {
	Assemble(ctx context.Context, slidePaths []string, audioPath, outPath string) error
}
