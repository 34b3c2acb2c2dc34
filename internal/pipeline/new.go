package pipeline

import (
	"time"

	"github.com/knmori/papercast/internal/brief"
	"github.com/knmori/papercast/internal/config"
	"github.com/knmori/papercast/internal/extractor"
	"github.com/knmori/papercast/internal/feed"
	"github.com/knmori/papercast/internal/fetcher"
	"github.com/knmori/papercast/internal/logger"
	"github.com/knmori/papercast/internal/outline"
	"github.com/knmori/papercast/internal/slides"
	"github.com/knmori/papercast/internal/summarizer"
	"github.com/knmori/papercast/internal/video"
	"github.com/knmori/papercast/internal/voicevox"
)

// Deps bundles every adapter the runner drives.
type Deps struct {
	Feed       feed.Source
	Fetcher    fetcher.Fetcher
	Extractor  extractor.Extractor
	Summarizer summarizer.Summarizer
	Outliner   outline.Builder
	Slides     slides.Renderer
	Narrator   voicevox.Synthesizer
	Assembler  video.Assembler
	Brief      brief.Writer
}

type implRunner struct {
	cfg    *config.Config
	deps   Deps
	logger logger.Logger
	now    func() time.Time
}

// New creates a Runner over the supplied adapters.
func New(cfg *config.Config, deps Deps, log logger.Logger) Runner {
	return &implRunner{
		cfg:    cfg,
		deps:   deps,
		logger: log,
		now:    time.Now,
	}
}
