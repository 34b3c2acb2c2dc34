package slides

import (
	"context"
	"fmt"
	"strings"

	"github.com/fogleman/gg"
)

// Canvas geometry is fixed. Text flows from a fixed origin with fixed line
// spacing and no auto-fit; oversized content runs off the canvas.
const (
	canvasWidth  = 1920
	canvasHeight = 1080
	originX      = 100.0
	originY      = 100.0
	lineSpacing  = 20.0
)

// Render draws the section name and its text onto a white canvas and
// writes the PNG to outPath.
func (r *implRenderer) Render(ctx context.Context, section, text, outPath string) error {
	dc := gg.NewContext(canvasWidth, canvasHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetRGB(0, 0, 0)

	if r.fontPath != "" {
		if err := dc.LoadFontFace(r.fontPath, r.fontPoints); err != nil {
			return fmt.Errorf("load font %s: %w", r.fontPath, err)
		}
	}

	// DrawString takes the baseline, so the first line sits one font height
	// below the origin.
	y := originY + dc.FontHeight()
	for _, line := range strings.Split(section+"\n\n"+text, "\n") {
		dc.DrawString(line, originX, y)
		y += dc.FontHeight() + lineSpacing
	}

	if err := dc.SavePNG(outPath); err != nil {
		return fmt.Errorf("write slide %s: %w", outPath, err)
	}

	r.logger.Debug(ctx, "Rendered slide %s -> %s", section, outPath)
	return nil
}
