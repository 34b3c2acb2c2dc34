package logger

import (
	"context"
	"log"
	"os"
	"strings"
)

type level int

const (
	levelDebug level = iota
	levelInfo
	levelWarn
	levelError
)

// parseLevel maps a config string to a level. Unknown values fall back to
// info rather than failing startup.
func parseLevel(name string) level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return levelDebug
	case "warn", "warning":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

type implLogger struct {
	out *log.Logger
	min level
}

// New creates a Logger writing to stdout with the given minimum level.
func New(levelName string) Logger {
	return &implLogger{
		out: log.New(os.Stdout, "", log.LstdFlags),
		min: parseLevel(levelName),
	}
}

func (l *implLogger) enabled(lv level) bool {
	return lv >= l.min
}

func (l *implLogger) print(lv level, tag, msg string, args ...interface{}) {
	if !l.enabled(lv) {
		return
	}
	l.out.Printf(tag+" "+msg, args...)
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.print(levelDebug, "[DEBUG]", msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.print(levelInfo, "[INFO]", msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.print(levelWarn, "[WARN]", msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.print(levelError, "[ERROR]", msg, args...)
}
