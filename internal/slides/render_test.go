package slides

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/knmori/papercast/internal/config"
	"github.com/knmori/papercast/internal/logger"
)

func TestRender(t *testing.T) {
	r := New(config.SlidesConfig{}, logger.New("error"))
	out := filepath.Join(t.TempDir(), "METHOD.png")

	err := r.Render(context.Background(), "METHOD", "looked closely\nat everything", out)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("slide not written: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("slide is not a PNG: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != canvasWidth || bounds.Dy() != canvasHeight {
		t.Errorf("slide is %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), canvasWidth, canvasHeight)
	}
}

func TestRenderEmptyText(t *testing.T) {
	r := New(config.SlidesConfig{}, logger.New("error"))
	out := filepath.Join(t.TempDir(), "RESULT.png")

	// A section the model skipped still gets a slide with just its name.
	if err := r.Render(context.Background(), "RESULT", "", out); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("slide not written: %v", err)
	}
}

func TestRenderMissingFont(t *testing.T) {
	r := New(config.SlidesConfig{FontPath: "no/such/font.ttf", FontPoints: 36}, logger.New("error"))
	out := filepath.Join(t.TempDir(), "TITLE.png")

	if err := r.Render(context.Background(), "TITLE", "text", out); err == nil {
		t.Error("Render() should fail when the configured font cannot be loaded")
	}
}

func TestRenderUnwritablePath(t *testing.T) {
	r := New(config.SlidesConfig{}, logger.New("error"))
	out := filepath.Join(t.TempDir(), "missing", "dir", "TITLE.png")

	if err := r.Render(context.Background(), "TITLE", "text", out); err == nil {
		t.Error("Render() should fail when the output directory does not exist")
	}
}
