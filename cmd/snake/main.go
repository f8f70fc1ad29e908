// snake is a turn-based snake game for the terminal.
//
// Usage:
//
//	snake                - Start the game (same as "snake play")
//	snake play           - Start the game
//	snake speeds         - List speed presets
//	snake config         - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>    - Custom config YAML
//	--speed <preset>   - slow, normal, fast or insane
//	--width <n>        - Board width in tiles
//	--height <n>       - Board height in tiles
//	--seed <value>     - RNG seed for reproducible food placement
//	--log-file <path>  - Write logs to a file (logs are discarded otherwise)
//	--debug            - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig  string
	flagSpeed   string
	flagWidth   int
	flagHeight  int
	flagSeed    int64
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic turn-based game in your terminal",
	Long: `Snake is a turn-based snake game for the terminal.

Steer the snake around a wrap-around board, eat food to grow, and avoid
running into yourself. The game ends when the snake bites itself or fills
the whole board.

Available commands:
  play     - Start the game (default)
  speeds   - List speed presets
  config   - Print the effective configuration

Examples:
  snake
  snake play --speed fast
  snake play --width 30 --height 20
  snake config --config ./my-snake.yaml`,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagSpeed, "speed", "", "Speed preset: slow, normal, fast, insane")
	rootCmd.PersistentFlags().IntVar(&flagWidth, "width", 0, "Board width in tiles (0 = from config)")
	rootCmd.PersistentFlags().IntVar(&flagHeight, "height", 0, "Board height in tiles (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(speedsCmd)
	rootCmd.AddCommand(configCmd)
}
