package extractor

import "github.com/knmori/papercast/internal/logger"

type implExtractor struct {
	logger logger.Logger
}

// New creates a PDF text extractor.
func New(log logger.Logger) Extractor {
	return &implExtractor{logger: log}
}
