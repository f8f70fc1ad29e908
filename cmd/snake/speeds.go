package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var speedsCmd = &cobra.Command{
	Use:   "speeds",
	Short: "List speed presets",
	Long:  `Shows every speed preset and its turn interval. The active preset is marked.`,
	Args:  cobra.NoArgs,
	RunE:  runSpeeds,
}

func runSpeeds(cmd *cobra.Command, args []string) error {
	cfg, _, err := resolveConfig(flagConfig, flagSpeed, flagWidth, flagHeight)
	if err != nil {
		return err
	}

	fmt.Println("Speed presets:")
	fmt.Println()
	fmt.Printf("    %-8s  %s\n", "Preset", "Turn")
	fmt.Printf("    %-8s  %s\n", "------", "----")

	for _, p := range config.SpeedPresets() {
		marker := "  "
		if p == cfg.Speed {
			marker = "* "
		}
		fmt.Printf("  %s%-8s  %dms\n", marker, p, p.TickMS())
	}

	if cfg.Speed == "" {
		fmt.Printf("\n  Custom turn interval: %dms\n", cfg.Timing.TickMS)
	}

	fmt.Println()
	fmt.Println("Run 'snake play --speed <preset>' to pick one.")
	return nil
}
