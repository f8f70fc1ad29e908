// Package config provides YAML-based configuration loading and speed presets
// for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Timing TimingConfig `yaml:"timing"`
	Start  StartConfig  `yaml:"start"`
	Speed  SpeedPreset  `yaml:"speed"`
}

// BoardConfig defines the board dimensions in tiles.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines turn and end-of-game timing.
type TimingConfig struct {
	TickMS     int `yaml:"tick_ms"`      // Time between turns
	EndDelayMS int `yaml:"end_delay_ms"` // Final board display time before the game-over menu
}

// StartConfig defines the initial snake.
type StartConfig struct {
	Direction string `yaml:"direction"` // "up", "down", "left" or "right"
}

// Validate checks that the configuration can start a game.
func (c SnakeConfig) Validate() error {
	if c.Board.Width < snake.MinBoardSize || c.Board.Height < snake.MinBoardSize {
		return fmt.Errorf("%w: board %dx%d is smaller than %dx%d",
			ErrInvalidConfig, c.Board.Width, c.Board.Height, snake.MinBoardSize, snake.MinBoardSize)
	}
	if c.Board.Width > snake.MaxBoardSize || c.Board.Height > snake.MaxBoardSize {
		return fmt.Errorf("%w: board %dx%d is larger than %dx%d",
			ErrInvalidConfig, c.Board.Width, c.Board.Height, snake.MaxBoardSize, snake.MaxBoardSize)
	}
	if c.Timing.TickMS <= 0 {
		return fmt.Errorf("%w: tick_ms must be positive, got %d", ErrInvalidConfig, c.Timing.TickMS)
	}
	if c.Timing.EndDelayMS < 0 {
		return fmt.Errorf("%w: end_delay_ms must not be negative, got %d", ErrInvalidConfig, c.Timing.EndDelayMS)
	}
	if _, ok := core.ParseDirection(c.Start.Direction); !ok {
		return fmt.Errorf("%w: unknown start direction %q", ErrInvalidConfig, c.Start.Direction)
	}
	if c.Speed != "" && !c.Speed.Valid() {
		return fmt.Errorf("%w: unknown speed %q", ErrInvalidConfig, c.Speed)
	}
	return nil
}

// TickInterval returns the time between turns.
func (c SnakeConfig) TickInterval() time.Duration {
	return time.Duration(c.Timing.TickMS) * time.Millisecond
}

// EndDelay returns the game-over display delay.
func (c SnakeConfig) EndDelay() time.Duration {
	return time.Duration(c.Timing.EndDelayMS) * time.Millisecond
}

// GameConfig converts the YAML configuration into engine parameters.
// The configuration should be validated first; an unknown direction falls
// back to up.
func (c SnakeConfig) GameConfig(seed int64) snake.Config {
	dir, ok := core.ParseDirection(c.Start.Direction)
	if !ok {
		dir = core.Up
	}
	return snake.Config{
		Width:          c.Board.Width,
		Height:         c.Board.Height,
		TickInterval:   c.TickInterval(),
		EndDelay:       c.EndDelay(),
		StartDirection: dir,
		Seed:           seed,
	}
}
