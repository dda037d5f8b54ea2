package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/games/arkanoid"
	"github.com/vovakirdan/arkanoid/internal/platform/tui"
	"github.com/vovakirdan/arkanoid/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a difficulty.
After a round, press Esc to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select difficulty
  Tab          - Results board
  Q            - Quit

Examples:
  arkanoid menu
  arkanoid menu --fps 30
  arkanoid menu --db ./runs.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagSound, "sound", true, "Play sound effects")
	menuCmd.Flags().Float64Var(&flagVolume, "volume", 0, "Volume adjustment in powers of two (-2 is a quarter)")
}

func runMenu(_ *cobra.Command, _ []string) error {
	// Validates the config file up front; the menu picks the difficulty
	if _, err := resolveDifficulty(""); err != nil {
		return err
	}

	logger, closeLog, err := newFileLogger("arkanoid")
	if err != nil {
		return err
	}
	defer closeLog()

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		logger.Warn("could not open runs database", "error", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	sounds := openAudio(flagSound, logger)
	defer sounds.Close()

	cfg := runtimeConfig()

	// Menu loop
	for {
		// Show menu and get selection
		menuResult, err := tui.RunMenu(store, cfg, logger)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if goBack {
				continue // Back to menu
			}
			return nil // User quit from scoreboard
		}

		preset := config.DifficultyPreset(strings.TrimPrefix(menuResult.GameID, arkanoid.GameIDPrefix))
		game, err := createGame(preset)
		if err != nil {
			logger.Error("could not create game", "game", menuResult.GameID, "error", err)
			continue
		}

		// Fresh seed for each round unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		backToMenu, err := tui.Run(game, cfg, tui.Options{
			Store:      store,
			Audio:      sounds,
			Logger:     logger,
			HoldWindow: flagHold,
		})
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if !backToMenu {
			return nil
		}
	}
}
