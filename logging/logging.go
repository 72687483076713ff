// Package logging configures the process wide slog logger. Output can
// be held back in memory while a full screen view owns the terminal
// and is released once the terminal is free again.
package logging

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// heldWriter forwards log lines to a target, or keeps them in memory
// while held. A log file, if configured, always receives every line.
type heldWriter struct {
	mu     sync.Mutex
	held   bytes.Buffer
	target io.Writer
	file   *os.File
	hold   bool
}

func (w *heldWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	var firstErr error
	switch {
	case w.hold:
		w.held.Write(p)
	case w.target != nil:
		if _, err := w.target.Write(p); err != nil {
			firstErr = err
		}
	}
	if w.file != nil {
		if _, err := w.file.Write(p); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return len(p), firstErr
}

var writer = &heldWriter{target: os.Stderr}

// ParseLevel maps DEBUG, INFO, WARN and ERROR (any case) to a slog
// level. Anything else is INFO.
func ParseLevel(levelStr string) slog.Level {
	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Init installs a new default slog logger writing text or json to
// stderr, teed to logFile when it is not empty. With hold set, output
// is kept in memory until Release or Close.
func Init(levelStr, formatStr, logFile string, hold bool) error {
	next := &heldWriter{target: os.Stderr, hold: hold}
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			return err
		}
		next.file = file
	}
	// Close a file left open by an earlier Init.
	if err := Close(); err != nil {
		slog.Warn("Closing previous log output failed", "error", err)
	}
	writer = next

	opts := &slog.HandlerOptions{Level: ParseLevel(levelStr)}
	var handler slog.Handler
	if strings.ToLower(formatStr) == "json" {
		handler = slog.NewJSONHandler(writer, opts)
	} else {
		handler = slog.NewTextHandler(writer, opts)
	}
	slog.SetDefault(slog.New(handler))
	return nil
}

// Hold stops live output. Lines are kept until Release.
func Hold() {
	writer.mu.Lock()
	defer writer.mu.Unlock()
	writer.hold = true
}

// Release writes the held lines to target and continues live output
// there.
func Release(target io.Writer) error {
	writer.mu.Lock()
	defer writer.mu.Unlock()

	if writer.held.Len() > 0 {
		if _, err := target.Write(writer.held.Bytes()); err != nil {
			return err
		}
		writer.held.Reset()
	}
	writer.target = target
	writer.hold = false
	return nil
}

// Close flushes held lines to the live target, or to stderr when there
// is none, and closes the log file.
func Close() error {
	writer.mu.Lock()
	defer writer.mu.Unlock()

	var firstErr error
	if writer.held.Len() > 0 {
		out := writer.target
		if out == nil {
			out = os.Stderr
		}
		if _, err := out.Write(writer.held.Bytes()); err != nil {
			firstErr = err
		}
		writer.held.Reset()
	}
	if writer.file != nil {
		if err := writer.file.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		writer.file = nil
	}
	return firstErr
}
