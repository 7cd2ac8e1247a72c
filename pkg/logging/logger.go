package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lmittmann/tint"
)

type Options struct {
	// Writer defaults to os.Stderr.
	Writer    io.Writer
	Level     slog.Leveler
	AddSource bool
	NoColor   bool
}

// New builds a tint-backed slog logger.
func New(opts Options) *slog.Logger {
	if opts.Writer == nil {
		opts.Writer = os.Stderr
	}
	if opts.Level == nil {
		opts.Level = slog.LevelInfo
	}
	return slog.New(tint.NewHandler(opts.Writer, &tint.Options{
		Level:      opts.Level,
		AddSource:  opts.AddSource,
		TimeFormat: time.DateTime,
		NoColor:    opts.NoColor,
	}))
}

// NewFile logs to path, appending. The returned closer must be called on
// shutdown.
func NewFile(path string, level slog.Leveler) (*slog.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return New(Options{Writer: f, Level: level, NoColor: true}), f, nil
}

// Discard drops every record. Used as the default in components built
// without a logger.
func Discard() *slog.Logger {
	return slog.New(tint.NewHandler(io.Discard, &tint.Options{Level: slog.LevelError + 1}))
}
