package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default configuration: the classic 20x19
// board, 350ms turns and a 1.5s game-over delay.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:  20,
			Height: 19,
		},
		Timing: TimingConfig{
			TickMS:     350,
			EndDelayMS: 1500,
		},
		Start: StartConfig{
			Direction: "up",
		},
		Speed: SpeedNormal,
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultSnakeYAML))
	copy(out, defaultSnakeYAML)
	return out
}
