package fetcher

import (
	"net/http"

	"golang.org/x/time/rate"

	"github.com/knmori/papercast/internal/config"
	"github.com/knmori/papercast/internal/logger"
)

type implFetcher struct {
	client  *http.Client
	limiter *rate.Limiter
	logger  logger.Logger
}

// New creates a Fetcher with the configured download timeout. The limiter
// is shared with the feed source so both honor the same request pacing.
func New(cfg config.DocumentConfig, limiter *rate.Limiter, log logger.Logger) Fetcher {
	return &implFetcher{
		client:  &http.Client{Timeout: cfg.Timeout()},
		limiter: limiter,
		logger:  log,
	}
}
