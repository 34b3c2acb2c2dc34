package textgen

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/knmori/papercast/internal/config"
	"github.com/knmori/papercast/internal/logger"
)

type implGenerator struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	logger  logger.Logger
}

// New creates a Generator backed by the Gemini API. One client is built up
// front and shared by every caller.
func New(ctx context.Context, cfg config.GeminiConfig, apiKey string, log logger.Logger) (Generator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is empty")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &implGenerator{
		client:  client,
		model:   cfg.Model,
		timeout: cfg.Timeout(),
		logger:  log,
	}, nil
}
