package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/games/arkanoid"
	"github.com/vovakirdan/arkanoid/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the difficulty variants",
	Long:  `Shows every registered difficulty variant with its ID and speed.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, "ID", "Title", "Speed")
	fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, "--", "-----", "-----")

	// Print variants in difficulty order
	defaults := config.DefaultArkanoidConfig()
	for _, preset := range config.Presets {
		info, ok := registry.Lookup(arkanoid.GameID(preset))
		if !ok {
			continue
		}
		cfg := defaults
		config.ApplyPreset(&cfg, preset)
		fmt.Printf("  %-*s  %-20s  %g\n", maxIDLen, info.ID, info.Title, cfg.Speed())
	}

	fmt.Println()
	fmt.Println("Run 'arkanoid play --difficulty <easy|medium|hard>' to play.")
}
