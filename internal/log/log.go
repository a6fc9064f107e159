// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package log provides the structured logger used by the CLI. Diagnostics go
// through it; user-facing results are printed directly to stdout.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Format selects the log encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Config holds logger settings.
type Config struct {
	Level  slog.Level
	Format Format
	Output io.Writer
}

// ParseLevel converts a level name (debug, info, warn, error) to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelWarn, fmt.Errorf("unknown log level %q: use debug, info, warn, or error", s)
}

// ParseFormat converts a format name (text, json) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "console", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	}
	return FormatText, fmt.Errorf("unknown log format %q: use text or json", s)
}

// New builds a logger from cfg.
func New(cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Level}
	out := cfg.Output
	if out == nil {
		out = io.Discard
	}

	var h slog.Handler
	if cfg.Format == FormatJSON {
		h = slog.NewJSONHandler(out, opts)
	} else {
		h = slog.NewTextHandler(out, opts)
	}
	return slog.New(h)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
