package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/purrfect-leap/internal/config"
)

// openLogger creates the file logger. The game owns the terminal, so logs
// never go to stdout or stderr while it runs. The returned close func is
// always safe to call.
func openLogger(path string, debug bool) (*log.Logger, func(), error) {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}

	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	path, err := config.ExpandHome(path)
	if err != nil {
		return log.New(io.Discard), func() {}, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return log.New(io.Discard), func() {}, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return log.New(io.Discard), func() {}, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "leap",
		Level:           level,
	})
	return logger, func() { f.Close() }, nil
}
