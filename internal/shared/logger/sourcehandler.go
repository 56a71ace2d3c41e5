package logger

import (
	"context"
	"log/slog"
	"runtime"
)

type sourceHandler struct {
	handler  slog.Handler
	minLevel slog.Leveler
}

// NewSourceHandler wraps a handler so that records at or above minLevel
// carry a source attribute. The wrapped handler should be built with
// AddSource disabled.
//
// Example:
//
//	handler := NewSourceHandler(tint.NewHandler(os.Stderr, opts), slog.LevelWarn)
func NewSourceHandler(handler slog.Handler, minLevel slog.Leveler) slog.Handler {
	return &sourceHandler{
		handler:  handler,
		minLevel: minLevel,
	}
}

func (h *sourceHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= h.minLevel.Level() && r.PC != 0 {
		fs := runtime.CallersFrames([]uintptr{r.PC})
		f, _ := fs.Next()
		r.AddAttrs(slog.Any(slog.SourceKey, &slog.Source{
			Function: f.Function,
			File:     f.File,
			Line:     f.Line,
		}))
	}
	return h.handler.Handle(ctx, r)
}

func (h *sourceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &sourceHandler{handler: h.handler.WithAttrs(attrs), minLevel: h.minLevel}
}

func (h *sourceHandler) WithGroup(name string) slog.Handler {
	return &sourceHandler{handler: h.handler.WithGroup(name), minLevel: h.minLevel}
}

func (h *sourceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}
