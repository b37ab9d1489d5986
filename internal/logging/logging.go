// Package logging builds the debug logger.
//
// The TUI owns the terminal while it runs, so log output only ever goes to
// a file. With debugging disabled every record is discarded.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hy4ri/tasklist-tui/internal/config"
)

const prefix = "tasklist"

// Options holds configuration for the debug logger.
type Options struct {
	Level           log.Level
	ReportTimestamp bool
	Prefix          string
}

// DefaultOptions returns default options for file logging.
func DefaultOptions() Options {
	return Options{
		Level:           log.DebugLevel,
		ReportTimestamp: true,
		Prefix:          prefix,
	}
}

// New returns a logger writing to w.
func New(w io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           opts.Level,
		Formatter:       log.LogfmtFormatter,
		ReportTimestamp: opts.ReportTimestamp,
		Prefix:          opts.Prefix,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return New(io.Discard, DefaultOptions())
}

// FromConfig opens the logger described by cfg. The returned closer must be
// called once the session ends.
func FromConfig(cfg *config.Config) (*log.Logger, io.Closer, error) {
	if cfg == nil || !cfg.Log.Debug {
		return Discard(), io.NopCloser(nil), nil
	}

	opts := DefaultOptions()
	if cfg.Log.Level != "" {
		lvl, err := log.ParseLevel(cfg.Log.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
		}
		opts.Level = lvl
	}

	path, err := cfg.LogPath()
	if err != nil {
		return nil, nil, fmt.Errorf("resolve log path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	return New(f, opts), f, nil
}
