package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// resolveConfig loads the config file and applies command-line overrides.
func resolveConfig(path, speed string, width, height int) (config.SnakeConfig, config.Source, error) {
	cfg, src, err := config.LoadWithSource(path)
	if err != nil {
		return cfg, src, err
	}

	if speed != "" {
		preset, err := config.ParseSpeed(speed)
		if err != nil {
			return cfg, src, err
		}
		config.ApplySpeedPreset(&cfg, preset)
	}
	if width > 0 {
		cfg.Board.Width = width
	}
	if height > 0 {
		cfg.Board.Height = height
	}

	if err := cfg.Validate(); err != nil {
		return cfg, src, err
	}
	return cfg, src, nil
}

// newLogger creates the application logger. The terminal belongs to the UI,
// so logs go to logFile or nowhere. The returned close function is never nil.
func newLogger(logFile string, debug bool) (*log.Logger, func() error, error) {
	var w io.Writer = io.Discard
	closeFn := func() error { return nil }

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, closeFn, fmt.Errorf("cannot open log file %s: %w", logFile, err)
		}
		w = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}
