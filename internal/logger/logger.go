// Package logger builds the trace logger the redirector layers share. All
// output is discarded unless tracing is explicitly enabled, because the
// handlers sit on an extremely hot call path.
package logger

import (
	"io"
	"log/slog"
	"os"
)

const defaultLogPath = "profilekit.log"

// Options configures logger construction.
type Options struct {
	Enabled bool       // if false, all logging is discarded
	Path    string     // log file path; default "profilekit.log" in the working directory
	Level   slog.Level // minimum level when enabled; default LevelInfo
}

// Discard is a logger that drops everything. Layers that receive a nil
// logger fall back to it.
var Discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// New builds a logger according to opts. When enabled it appends JSON lines
// to the log file; failure to open the file is returned so the caller can
// degrade to Discard.
func New(opts Options) (*slog.Logger, error) {
	if !opts.Enabled {
		return Discard, nil
	}

	path := opts.Path
	if path == "" {
		path = defaultLogPath
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return Discard, err
	}

	return slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: opts.Level})), nil
}

// WithCategory tags a logger with the symbolic name of the legacy entry point
// (or internal subsystem) producing the records.
func WithCategory(l *slog.Logger, category string) *slog.Logger {
	if l == nil {
		l = Discard
	}
	return l.With("category", category)
}
