package watcher

import (
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/knmori/papercast/internal/logger"
)

type implWatcher struct {
	inboxDir string
	handler  Handler
	logger   logger.Logger
	watcher  *fsnotify.Watcher
}

// New creates a Watcher over inboxDir. Documents are handed to handler one
// at a time; runs never overlap.
func New(inboxDir string, handler Handler, log logger.Logger) (Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsw.Add(inboxDir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return &implWatcher{
		inboxDir: inboxDir,
		handler:  handler,
		logger:   log,
		watcher:  fsw,
	}, nil
}
