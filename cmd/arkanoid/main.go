// arkanoid is a single-screen block breaker for the terminal.
//
// Usage:
//
//	arkanoid play            - Play a round at the configured difficulty
//	arkanoid menu            - Pick a difficulty interactively
//	arkanoid list            - List the difficulty variants
//	arkanoid scores [diff]   - Show results
//	arkanoid serve           - Start SSH server for remote play
//	arkanoid config dump     - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arkanoid/runs.db)
//	--config <path>       - Use a custom YAML config
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--hold <duration>     - How long a key counts as held after its last press
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arkanoid/internal/platform/tui"

	// Import the game to register its difficulty variants
	_ "github.com/vovakirdan/arkanoid/internal/games/arkanoid"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
	flagHold     time.Duration
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arkanoid",
	Short: "Arkanoid - break blocks in your terminal",
	Long: `Arkanoid is a block breaker played in the terminal with the keyboard
or the mouse. Steer the paddle, keep the ball in play and clear every block.

Available commands:
  play     - Play a round directly
  menu     - Interactive difficulty picker
  list     - Show the difficulty variants
  scores   - View results
  serve    - Start SSH server for remote play
  config   - Inspect the game configuration

Examples:
  arkanoid play
  arkanoid play --difficulty easy
  arkanoid menu
  arkanoid serve --ssh :2222
  arkanoid scores hard`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arkanoid/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.arkanoid/arkanoid.log", "Log file used while a game is on screen")
	rootCmd.PersistentFlags().DurationVar(&flagHold, "hold", tui.DefaultHoldWindow, "How long a key counts as held after its last press (raise it if the paddle stutters while steering)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
