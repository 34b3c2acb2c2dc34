package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	"github.com/knmori/papercast/internal/brief"
	"github.com/knmori/papercast/internal/config"
	"github.com/knmori/papercast/internal/extractor"
	"github.com/knmori/papercast/internal/feed"
	"github.com/knmori/papercast/internal/fetcher"
	"github.com/knmori/papercast/internal/logger"
	"github.com/knmori/papercast/internal/outline"
	"github.com/knmori/papercast/internal/pipeline"
	"github.com/knmori/papercast/internal/slides"
	"github.com/knmori/papercast/internal/summarizer"
	"github.com/knmori/papercast/internal/textgen"
	"github.com/knmori/papercast/internal/video"
	"github.com/knmori/papercast/internal/voicevox"
	"github.com/knmori/papercast/internal/watcher"
	"github.com/knmori/papercast/pkg/executor"
)

func main() {
	ctx := context.Background()

	// Local development keeps secrets in .env; deployments inject real
	// environment variables.
	_ = godotenv.Load()

	cfgPath := os.Getenv("PAPERCAST_CONFIG")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "papercast: newest paper to narrated video")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Model: %s (%s)", cfg.Gemini.Model, cfg.Gemini.Language)
	log.Info(ctx, "Voice: %s (%s)", cfg.Voicevox.Speaker, cfg.Voicevox.Style)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Error(ctx, "GEMINI_API_KEY is not set")
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.Paths.Output, 0755); err != nil {
		log.Error(ctx, "Failed to create output directory: %v", err)
		os.Exit(1)
	}

	gen, err := textgen.New(ctx, cfg.Gemini, apiKey, log)
	if err != nil {
		log.Error(ctx, "Failed to create text generator: %v", err)
		os.Exit(1)
	}

	// arXiv asks automated clients for at most one request every three
	// seconds; the feed and the downloader share one limiter.
	limiter := rate.NewLimiter(rate.Every(3*time.Second), 1)

	runner := pipeline.New(cfg, pipeline.Deps{
		Feed:       feed.New(cfg.Feed, limiter, log),
		Fetcher:    fetcher.New(cfg.Document, limiter, log),
		Extractor:  extractor.New(log),
		Summarizer: summarizer.New(gen, cfg.Gemini, log),
		Outliner:   outline.New(gen, log),
		Slides:     slides.New(cfg.Slides, log),
		Narrator:   voicevox.New(cfg.Voicevox, log),
		Assembler:  video.New(cfg.Video, executor.New(), log),
		Brief:      brief.New(log),
	}, log)

	if len(os.Args) > 1 && os.Args[1] == "watch" {
		if err := runWatch(ctx, cfg, runner, log); err != nil && err != context.Canceled {
			log.Error(ctx, "Watch mode stopped: %v", err)
			os.Exit(1)
		}
		return
	}

	res, err := runner.Run(ctx)
	if err != nil {
		// The runner already logged the failed stage.
		os.Exit(1)
	}

	switch res.State {
	case pipeline.StateNoWork:
		log.Info(ctx, "Nothing to process")
	case pipeline.StateDone:
		log.Info(ctx, "Finished: %s", res.VideoPath)
	}
}

// runWatch turns every PDF dropped into the inbox into a video, one at a
// time, until a shutdown signal arrives.
func runWatch(ctx context.Context, cfg *config.Config, runner pipeline.Runner, log logger.Logger) error {
	if err := os.MkdirAll(cfg.Paths.Inbox, 0755); err != nil {
		return fmt.Errorf("create inbox directory: %w", err)
	}

	w, err := watcher.New(cfg.Paths.Inbox, func(ctx context.Context, path string) error {
		_, err := runner.RunDocument(ctx, path)
		return err
	}, log)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Drop PDF files into %s to turn them into videos", cfg.Paths.Inbox)
	log.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
		cancel()
		return nil
	case err := <-errChan:
		return err
	}
}
