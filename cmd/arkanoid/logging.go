package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w at the --log-level threshold.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// newFileLogger creates the logger used while the terminal shows a game.
// Writing to stderr would tear the alternate screen, so records go to the
// --log-file instead. If the file cannot be opened logging is discarded.
// The returned func closes the file.
func newFileLogger(prefix string) (*log.Logger, func(), error) {
	noop := func() {}

	path := expandHome(flagLogFile)
	if path == "" {
		logger, err := newLogger(io.Discard, prefix)
		return logger, noop, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		logger, lerr := newLogger(io.Discard, prefix)
		return logger, noop, lerr
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		logger, lerr := newLogger(io.Discard, prefix)
		return logger, noop, lerr
	}

	logger, err := newLogger(f, prefix)
	if err != nil {
		f.Close()
		return nil, noop, err
	}
	return logger, func() { f.Close() }, nil
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, path[1:])
}
