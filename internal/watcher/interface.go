package watcher

import "context"

// Watcher monitors the inbox directory for dropped documents.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// Handler processes one dropped document.
type Handler func(ctx context.Context, path string) error
