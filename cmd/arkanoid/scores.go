package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/games/arkanoid"
	"github.com/vovakirdan/arkanoid/internal/registry"
	"github.com/vovakirdan/arkanoid/internal/storage"
)

var (
	flagScoresLimit int
	flagRecent      bool
	flagRunID       string
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show results",
	Long: `Without arguments, shows a summary per difficulty. With a difficulty,
shows its best runs (most blocks first, faster runs break ties).

Examples:
  arkanoid scores
  arkanoid scores hard
  arkanoid scores --recent
  arkanoid scores --run 3f0c...
  arkanoid scores easy --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the most recent runs of every difficulty")
	scoresCmd.Flags().StringVar(&flagRunID, "run", "", "Show a single run by ID")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the stored runs of the given difficulty")
}

func runScores(_ *cobra.Command, args []string) error {
	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening runs database: %w", err)
	}
	defer store.Close()

	switch {
	case flagRunID != "":
		return showRun(store, flagRunID)
	case flagRecent:
		return showRecent(store)
	case len(args) == 0:
		return showSummary(store)
	}

	preset, err := config.ParseDifficulty(args[0])
	if err != nil {
		return err
	}
	gameID := arkanoid.GameID(preset)
	if !registry.Exists(gameID) {
		return fmt.Errorf("no game registered for difficulty %q", preset)
	}

	if flagClear {
		if err := store.ClearRuns(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared runs for %s.\n", gameID)
		return nil
	}

	return showTop(store, gameID)
}

func showTop(store *storage.Store, gameID string) error {
	title := gameID
	if info, ok := registry.Lookup(gameID); ok {
		title = info.Title
	}

	runs, err := store.TopRuns(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Best Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arkanoid play --difficulty %s' to set the first result!\n", gameID[len(arkanoid.GameIDPrefix):])
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-6s  %-8s  %s\n", "Rank", "Blocks", "Result", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-8s  %s\n", "----", "------", "------", "----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-6d  %-6s  %-8s  %s\n",
			i+1, r.Score, r.Outcome, runDuration(r.Ticks), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Runs: %d  Wins: %d  Avg: %.1f\n", stats.HighScore, stats.RunsCount, stats.Wins, stats.AvgScore)
	return nil
}

func showRecent(store *storage.Store) error {
	runs, err := store.RecentRuns(flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Println("Recent Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-16s  %-6s  %-6s  %-8s  %-16s  %s\n", "Game", "Blocks", "Result", "Time", "Date", "Run")
	for _, r := range runs {
		fmt.Printf("  %-16s  %-6d  %-6s  %-8s  %-16s  %s\n",
			r.GameID, r.Score, r.Outcome, runDuration(r.Ticks), r.CreatedAt.Format("2006-01-02 15:04"), r.RunID)
	}
	return nil
}

func showRun(store *storage.Store, runID string) error {
	r, err := store.RunByID(runID)
	if err != nil {
		return err
	}
	if r == nil {
		return fmt.Errorf("no run with ID %q", runID)
	}

	fmt.Printf("Run:            %s\n", r.RunID)
	fmt.Printf("Game:           %s\n", r.GameID)
	fmt.Printf("Result:         %s\n", r.Outcome)
	fmt.Printf("Blocks:         %d\n", r.Score)
	fmt.Printf("Paddle bounces: %d\n", r.PaddleBounces)
	fmt.Printf("Time:           %s (%d ticks)\n", runDuration(r.Ticks), r.Ticks)
	fmt.Printf("Date:           %s\n", r.CreatedAt.Format("2006-01-02 15:04:05"))
	return nil
}

func showSummary(store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}

	fmt.Println("Results")
	fmt.Println()
	fmt.Printf("  %-16s  %-5s  %-5s  %-5s  %-6s  %s\n", "Game", "Runs", "Wins", "Best", "Avg", "Last played")
	fmt.Printf("  %-16s  %-5s  %-5s  %-5s  %-6s  %s\n", "----", "----", "----", "----", "---", "-----------")

	for _, preset := range config.Presets {
		id := arkanoid.GameID(preset)
		gs, ok := all[id]
		if !ok {
			fmt.Printf("  %-16s  %-5d  %-5d  %-5d  %-6s  %s\n", id, 0, 0, 0, "-", "never")
			continue
		}
		last := "never"
		if !gs.LastPlayed.IsZero() {
			last = gs.LastPlayed.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-16s  %-5d  %-5d  %-5d  %-6.1f  %s\n", id, gs.RunsCount, gs.Wins, gs.HighScore, gs.AvgScore, last)
	}
	return nil
}

// runDuration converts ticks to wall time at the --fps rate.
func runDuration(ticks int) string {
	fps := flagFPS
	if fps <= 0 {
		fps = 60
	}
	d := time.Duration(ticks) * time.Second / time.Duration(fps)
	return d.Round(100 * time.Millisecond).String()
}
