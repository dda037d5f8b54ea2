package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arkanoid/internal/audio"
	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/games/arkanoid"
	"github.com/vovakirdan/arkanoid/internal/platform/tui"
	"github.com/vovakirdan/arkanoid/internal/registry"
	"github.com/vovakirdan/arkanoid/internal/storage"
)

var (
	flagDifficulty string
	flagSound      bool
	flagVolume     float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start a round at the chosen difficulty.

Controls:
  Left/A, Right/D  - Move the paddle (stops at the walls)
  Space            - Launch the ball
  Mouse            - Hold the on-screen arrows to steer, click above the
                     paddle to launch
  Space/Enter      - Play again after the round ends (or click REPLAY)
  Esc/B            - Leave after the round ends
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy    - Speed 12
  medium  - Speed 18
  hard    - Speed 24 (default)

Examples:
  arkanoid play
  arkanoid play --difficulty easy
  arkanoid play --config ./my-arkanoid.yaml --seed 42
  arkanoid play --sound=false`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, medium, hard (default from config)")
	playCmd.Flags().BoolVar(&flagSound, "sound", true, "Play sound effects")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0, "Volume adjustment in powers of two (-2 is a quarter)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	preset, err := resolveDifficulty(flagDifficulty)
	if err != nil {
		return err
	}

	logger, closeLog, err := newFileLogger("arkanoid")
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := createGame(preset)
	if err != nil {
		return err
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		logger.Warn("could not open runs database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	sounds := openAudio(flagSound, logger)
	defer sounds.Close()

	_, runErr := tui.Run(game, runtimeConfig(), tui.Options{
		Store:      store,
		Audio:      sounds,
		Logger:     logger,
		HoldWindow: flagHold,
	})

	// Close store before returning
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}

// resolveDifficulty validates the configuration and picks the difficulty:
// the flag if set, otherwise the one from the config file.
func resolveDifficulty(flag string) (config.DifficultyPreset, error) {
	cfg, err := config.LoadArkanoid(flagConfig)
	if err != nil {
		return "", err
	}

	preset := cfg.Difficulty
	if flag != "" {
		preset, err = config.ParseDifficulty(flag)
		if err != nil {
			return "", err
		}
	}

	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	arkanoid.SetConfigPath(flagConfig)
	return preset, nil
}

// createGame instantiates the registered variant for preset.
func createGame(preset config.DifficultyPreset) (tui.Game, error) {
	created, err := registry.Create(arkanoid.GameID(preset))
	if err != nil {
		return nil, err
	}
	return tui.AsGame(created)
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// soundPlayer is an audio sink that may hold a device.
type soundPlayer interface {
	arkanoid.Audio
	Close()
}

type silentPlayer struct{ audio.Silent }

func (silentPlayer) Close() {}

// openAudio starts the speaker. Audio is optional: if the device cannot be
// opened the game runs silently.
func openAudio(enabled bool, logger *log.Logger) soundPlayer {
	if !enabled {
		return silentPlayer{}
	}

	synth := audio.NewSynth(flagVolume)
	if err := synth.Init(); err != nil {
		logger.Warn("sound disabled", "error", err)
		return silentPlayer{}
	}
	return synth
}
