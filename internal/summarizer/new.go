package summarizer

import (
	"github.com/knmori/papercast/internal/config"
	"github.com/knmori/papercast/internal/logger"
	"github.com/knmori/papercast/internal/textgen"
)

type implSummarizer struct {
	gen      textgen.Generator
	language string
	points   int
	maxChars int
	logger   logger.Logger
}

// New creates a Summarizer on top of the shared text generator.
func New(gen textgen.Generator, cfg config.GeminiConfig, log logger.Logger) Summarizer {
	return &implSummarizer{
		gen:      gen,
		language: cfg.Language,
		points:   cfg.SummaryPoints,
		maxChars: cfg.MaxInputChars,
		logger:   log,
	}
}
