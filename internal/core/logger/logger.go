// Package logger provides the structured logging engine for refframes.
// Uses log/slog with support for multiple sinks: stderr, file, TUI.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// ─────────────────────────────────────────────────────────────────────────────
// Logger
// ─────────────────────────────────────────────────────────────────────────────

// Logger wraps slog.Logger with refframes-specific utilities.
type Logger struct {
	*slog.Logger
}

// tuiSink is always part of the writer chain; it forwards lines only while a
// channel is registered, so the TUI can attach and detach after Init.
var tuiSink = &tuiWriter{}

// SetTUISink registers a channel that receives log lines destined for the TUI.
// Pass nil to detach.
func SetTUISink(ch chan string) {
	tuiSink.setChannel(ch)
}

// Init initialises the global logger. Safe to call multiple times (idempotent after first call).
func Init(level, format, logFile string, debug bool) (*Logger, error) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	if debug {
		lvl = slog.LevelDebug
	}

	// Build multi-writer: always write to stderr, optionally to file
	writers := []io.Writer{os.Stderr}

	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0750); err == nil {
			f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0640)
			if err == nil {
				writers = append(writers, f)
			}
		}
	}

	writers = append(writers, tuiSink)

	out := io.MultiWriter(writers...)

	var handler slog.Handler
	opts := &slog.HandlerOptions{Level: lvl, AddSource: debug}
	if format == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	base := slog.New(handler)
	slog.SetDefault(base)

	return &Logger{Logger: base}, nil
}

// Discard returns a logger that drops everything. Used by tests.
func Discard() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// ─────────────────────────────────────────────────────────────────────────────
// TUI writer
// ─────────────────────────────────────────────────────────────────────────────

// tuiWriter implements io.Writer by forwarding lines to the TUI sink channel.
type tuiWriter struct {
	mu sync.Mutex
	ch chan<- string
}

func (w *tuiWriter) setChannel(ch chan string) {
	w.mu.Lock()
	w.ch = ch
	w.mu.Unlock()
}

func (w *tuiWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.ch == nil {
		return len(p), nil
	}
	select {
	case w.ch <- string(p):
	default: // drop if channel full — never block logger
	}
	return len(p), nil
}
