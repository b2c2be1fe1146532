// Package actrace provides an optional structured-logging hook for
// automaton mutation and search events. The caller supplies a
// slog.Handler, and this package only ever logs through it, never a
// global logger.
package actrace

import (
	"context"
	"log/slog"
)

// Tracer emits one slog record per traced automaton event. A nil
// *Tracer is valid and every method on it is a no-op, so callers that
// didn't opt into tracing pay nothing beyond a nil check.
type Tracer struct {
	log *slog.Logger
}

// New wraps handler in a Tracer. Passing a nil handler yields a Tracer
// whose methods are no-ops, same as a nil *Tracer.
func New(handler slog.Handler) *Tracer {
	if handler == nil {
		return nil
	}
	return &Tracer{log: slog.New(handler)}
}

func (t *Tracer) log_(ctx context.Context, lvl slog.Level, msg string, attrs ...slog.Attr) {
	if t == nil || t.log == nil {
		return
	}
	t.log.LogAttrs(ctx, lvl, msg, attrs...)
}

// Insert logs a single-pattern insertion.
func (t *Tracer) Insert(word string) {
	t.log_(context.Background(), slog.LevelDebug, "insert",
		slog.Int("length", len([]rune(word))))
}

// Build logs a batch insertion of n words.
func (t *Tracer) Build(n int) {
	t.log_(context.Background(), slog.LevelDebug, "build",
		slog.Int("words", n))
}

// Remove logs a pattern removal.
func (t *Tracer) Remove(word string) {
	t.log_(context.Background(), slog.LevelDebug, "remove",
		slog.Int("length", len([]rune(word))))
}

// Search logs a completed search call.
func (t *Tracer) Search(text string, matches int) {
	t.log_(context.Background(), slog.LevelDebug, "search",
		slog.Int("text_length", len([]rune(text))),
		slog.Int("matches", matches))
}

// Filter logs a completed censoring pass.
func (t *Tracer) Filter(text string, ignoring bool) {
	t.log_(context.Background(), slog.LevelDebug, "filter",
		slog.Int("text_length", len([]rune(text))),
		slog.Bool("ignore_variant", ignoring))
}
