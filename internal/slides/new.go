package slides

import (
	"github.com/knmori/papercast/internal/config"
	"github.com/knmori/papercast/internal/logger"
)

type implRenderer struct {
	fontPath   string
	fontPoints float64
	logger     logger.Logger
}

// New creates a slide renderer. With no font path configured the built-in
// bitmap face is used; it cannot draw CJK glyphs, so configure a TTF for
// non-Latin narration languages.
func New(cfg config.SlidesConfig, log logger.Logger) Renderer {
	return &implRenderer{
		fontPath:   cfg.FontPath,
		fontPoints: cfg.FontPoints,
		logger:     log,
	}
}
