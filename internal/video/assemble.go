package video

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Assemble writes a concat list giving every slide a fixed duration, then
// drives ffmpeg to encode the slideshow with the narration track. The
// video always lasts slides x seconds-per-slide; narration that is shorter
// ends early and narration that is longer is cut off.
func (a *implAssembler) Assemble(ctx context.Context, slidePaths []string, audioPath, outPath string) error {
	if len(slidePaths) == 0 {
		return fmt.Errorf("no slides to assemble")
	}

	listPath := filepath.Join(filepath.Dir(outPath), "slides_concat.txt")
	if err := os.WriteFile(listPath, []byte(concatList(slidePaths, a.secondsPerSlide)), 0644); err != nil {
		return fmt.Errorf("write concat list: %w", err)
	}
	defer os.Remove(listPath)

	totalSeconds := len(slidePaths) * a.secondsPerSlide
	args := []string{
		"-y",
		"-f", "concat",
		"-safe", "0",
		"-i", listPath,
		"-i", audioPath,
		"-t", strconv.Itoa(totalSeconds),
		"-r", strconv.Itoa(a.fps),
		"-c:v", "libx264",
		"-pix_fmt", "yuv420p",
		"-c:a", "aac",
		"-b:a", "192k",
		"-movflags", "+faststart",
		outPath,
	}

	a.logger.Info(ctx, "Encoding video: %d slides x %ds at %d fps",
		len(slidePaths), a.secondsPerSlide, a.fps)

	if _, err := a.exec.Execute(ctx, "ffmpeg", args...); err != nil {
		// A failed encode must not leave a partial artifact behind.
		os.Remove(outPath)
		return fmt.Errorf("ffmpeg encode: %w", err)
	}

	a.logger.Info(ctx, "Video ready: %s", outPath)
	return nil
}

// concatList renders the ffmpeg concat-demuxer input. The demuxer ignores
// the duration of the final entry, so the last slide is listed once more
// to keep it on screen for its full slot.
func concatList(slidePaths []string, secondsPerSlide int) string {
	var sb strings.Builder
	for _, p := range slidePaths {
		fmt.Fprintf(&sb, "file '%s'\n", p)
		fmt.Fprintf(&sb, "duration %d\n", secondsPerSlide)
	}
	fmt.Fprintf(&sb, "file '%s'\n", slidePaths[len(slidePaths)-1])
	return sb.String()
}
