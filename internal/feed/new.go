package feed

import (
	"net/http"

	"golang.org/x/time/rate"

	"github.com/knmori/papercast/internal/config"
	"github.com/knmori/papercast/internal/logger"
)

type implSource struct {
	endpoint   string
	categories []string
	client     *http.Client
	limiter    *rate.Limiter
	logger     logger.Logger
}

// New creates a Source over the arXiv Atom API. The limiter, when non-nil,
// paces outbound queries; arXiv asks for one request every three seconds.
func New(cfg config.FeedConfig, limiter *rate.Limiter, log logger.Logger) Source {
	return &implSource{
		endpoint:   cfg.Endpoint,
		categories: cfg.Categories,
		client:     &http.Client{Timeout: cfg.Timeout()},
		limiter:    limiter,
		logger:     log,
	}
}
