package outline

import (
	"github.com/knmori/papercast/internal/logger"
	"github.com/knmori/papercast/internal/textgen"
)

type implBuilder struct {
	gen    textgen.Generator
	logger logger.Logger
}

// New creates a Builder on top of the shared text generator.
func New(gen textgen.Generator, log logger.Logger) Builder {
	return &implBuilder{gen: gen, logger: log}
}
