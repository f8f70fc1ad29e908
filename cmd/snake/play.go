package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the game",
	Long: `Start the game at the title menu.

Controls:
  Arrows/WASD/HJKL - Steer the snake, move the menu cursor
  Enter/Space      - Select a menu item, pause the game
  Q/Ctrl+C         - Quit

Speed presets:
  slow    - 500ms per turn
  normal  - 350ms per turn
  fast    - 200ms per turn
  insane  - 100ms per turn

Examples:
  snake play
  snake play --speed insane
  snake play --seed 42 --log-file snake.log --debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(flagLogFile, flagDebug)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, src, err := resolveConfig(flagConfig, flagSpeed, flagWidth, flagHeight)
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		return err
	}
	if src == config.SourceBuiltin {
		logger.Warn("embedded config unreadable, using built-in defaults")
	}
	logger.Debug("config loaded", "source", src, "speed", cfg.Speed, "tick", cfg.TickInterval())

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Session leaderboard
	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	} else {
		defer store.Close()
	}

	runErr := tui.Run(tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW: width,
			ScreenH: height,
			Seed:    flagSeed,
		},
		Store:  store,
		Logger: logger,
	})
	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
