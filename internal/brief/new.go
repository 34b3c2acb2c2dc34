package brief

import "github.com/knmori/papercast/internal/logger"

type implWriter struct {
	logger logger.Logger
}

// New creates a docx brief writer.
func New(log logger.Logger) Writer {
	return &implWriter{logger: log}
}
