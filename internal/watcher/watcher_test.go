package watcher

import (
	"context"
	"testing"

	"github.com/knmori/papercast/internal/logger"
)

func TestIsDocument(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"paper.pdf", true},
		{"paper.PDF", true},
		{"/inbox/deep/path/x.Pdf", true},
		{"notes.txt", false},
		{"archive.pdf.bak", false},
		{"pdf", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := isDocument(tt.path); got != tt.want {
				t.Errorf("isDocument(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestNewAndStop(t *testing.T) {
	handler := func(ctx context.Context, path string) error { return nil }

	w, err := New(t.TempDir(), handler, logger.New("error"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := w.Stop(); err != nil {
		t.Errorf("Stop() error = %v", err)
	}
}

func TestNewMissingDirectory(t *testing.T) {
	handler := func(ctx context.Context, path string) error { return nil }

	if _, err := New("/no/such/inbox/dir", handler, logger.New("error")); err == nil {
		t.Error("New() should fail for a missing directory")
	}
}
