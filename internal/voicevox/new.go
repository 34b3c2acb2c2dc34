package voicevox

import (
	"net/http"
	"strings"

	"github.com/knmori/papercast/internal/config"
	"github.com/knmori/papercast/internal/logger"
)

type implSynthesizer struct {
	baseURL string
	speaker string
	style   string
	speed   float64
	client  *http.Client
	logger  logger.Logger
}

// New creates a Synthesizer over a running VOICEVOX engine.
func New(cfg config.VoicevoxConfig, log logger.Logger) Synthesizer {
	return &implSynthesizer{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		speaker: cfg.Speaker,
		style:   cfg.Style,
		speed:   cfg.Speed,
		client:  &http.Client{Timeout: cfg.Timeout()},
		logger:  log,
	}
}
