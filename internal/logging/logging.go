// Package logging builds the slog.Logger used across tvdb-fanart.
package logging

import (
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config describes the desired logging configuration.
type Config struct {
	Level          string `yaml:"level"`
	Format         string `yaml:"format"`
	FilePath       string `yaml:"file_path,omitempty"`
	FileMaxSizeMB  int    `yaml:"file_max_size_mb,omitempty"`
	FileMaxFiles   int    `yaml:"file_max_files,omitempty"`
	FileMaxAgeDays int    `yaml:"file_max_age_days,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Level:          "info",
		Format:         "text",
		FileMaxSizeMB:  100,
		FileMaxFiles:   3,
		FileMaxAgeDays: 30,
	}
}

// New creates a logger writing to w and, if cfg.FilePath is set, to a
// rotating log file. w may be nil to log to the file only; with neither
// the logger discards everything.
//
// The returned closer releases the log file and is nil when no file is
// used.
func New(cfg Config, w io.Writer) (*slog.Logger, io.Closer) {
	writer, closer := buildWriter(cfg, w)
	return slog.New(buildHandler(writer, ParseLevel(cfg.Level), cfg.Format)), closer
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel converts a string to slog.Level, defaulting to Info.
func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ValidLevel returns true if s is a recognized log level.
func ValidLevel(s string) bool {
	switch s {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}

// ValidFormat returns true if s is a recognized log format.
func ValidFormat(s string) bool {
	switch s {
	case "text", "json":
		return true
	}
	return false
}

// buildWriter creates the io.Writer for log output. A configured file path
// adds a lumberjack writer, which is also returned as the closer.
func buildWriter(cfg Config, w io.Writer) (io.Writer, io.Closer) {
	if cfg.FilePath == "" {
		if w == nil {
			return io.Discard, nil
		}
		return w, nil
	}

	maxSize := cfg.FileMaxSizeMB
	if maxSize <= 0 {
		maxSize = 100
	}
	maxFiles := cfg.FileMaxFiles
	if maxFiles <= 0 {
		maxFiles = 3
	}
	maxAge := cfg.FileMaxAgeDays
	if maxAge <= 0 {
		maxAge = 30
	}

	lj := &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    maxSize,
		MaxBackups: maxFiles,
		MaxAge:     maxAge,
	}

	if w == nil {
		return lj, lj
	}
	return io.MultiWriter(w, lj), lj
}

func buildHandler(w io.Writer, level slog.Leveler, format string) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// String returns a human-readable summary of the config.
func (c Config) String() string {
	s := fmt.Sprintf("level=%s format=%s", c.Level, c.Format)
	if c.FilePath != "" {
		s += fmt.Sprintf(" file=%s max_size=%dMB max_files=%d max_age=%dd",
			c.FilePath, c.FileMaxSizeMB, c.FileMaxFiles, c.FileMaxAgeDays)
	}
	return s
}
