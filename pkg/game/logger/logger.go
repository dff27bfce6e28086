// Package logger configures the process-wide structured logger.
package logger

import (
	"context"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects where and how log records go.
type Options struct {
	// Level is the minimum level written anywhere.
	Level slog.Level

	// JSON switches the console handler from text to JSON records.
	JSON bool

	// FilePath enables an additional rotating file handler when non-empty.
	FilePath string
}

// New builds a logger from the options and installs it as the slog
// default. The file handler rotates at 10 MB keeping three backups.
func New(opts Options) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: opts.Level}

	var console slog.Handler
	if opts.JSON {
		console = slog.NewJSONHandler(os.Stderr, handlerOpts)
	} else {
		console = slog.NewTextHandler(os.Stderr, handlerOpts)
	}

	handlers := []slog.Handler{console}
	if opts.FilePath != "" {
		rotator := &lumberjack.Logger{
			Filename:   opts.FilePath,
			MaxSize:    10,
			MaxBackups: 3,
			Compress:   true,
		}
		handlers = append(handlers, slog.NewJSONHandler(rotator, handlerOpts))
	}

	var h slog.Handler = handlers[0]
	if len(handlers) > 1 {
		h = multiHandler(handlers)
	}

	log := slog.New(h)
	slog.SetDefault(log)
	return log
}

// multiHandler fans every record out to all wrapped handlers.
type multiHandler []slog.Handler

func (m multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m multiHandler) Handle(ctx context.Context, r slog.Record) error {
	var firstErr error
	for _, h := range m {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (m multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make(multiHandler, len(m))
	for i, h := range m {
		next[i] = h.WithAttrs(attrs)
	}
	return next
}

func (m multiHandler) WithGroup(name string) slog.Handler {
	next := make(multiHandler, len(m))
	for i, h := range m {
		next[i] = h.WithGroup(name)
	}
	return next
}
