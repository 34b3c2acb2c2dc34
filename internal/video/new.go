package video

import (
	"github.com/knmori/papercast/internal/config"
	"github.com/knmori/papercast/internal/logger"
	"github.com/knmori/papercast/pkg/executor"
)

type implAssembler struct {
	fps             int
	secondsPerSlide int
	exec            executor.Executor
	logger          logger.Logger
}

// New creates an Assembler that encodes through ffmpeg.
func New(cfg config.VideoConfig, exec executor.Executor, log logger.Logger) Assembler {
	return &implAssembler{
		fps:             cfg.FPS,
		secondsPerSlide: cfg.SecondsPerSlide,
		exec:            exec,
		logger:          log,
	}
}
