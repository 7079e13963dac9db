package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-minigames/internal/core"
	"github.com/vovakirdan/tui-minigames/internal/registry"
	"github.com/vovakirdan/tui-minigames/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show the run history of a game",
	Long: `Display the top 10 recorded runs and the best score of a game.

Examples:
  arcade scores flappy
  arcade scores snake --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

var flagClear bool

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history of the game (best score is kept)")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := args[0]
	info, ok := registry.Info(gameID)
	if !ok {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Run history of %s cleared.\n", info.Title)
		return nil
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n\n", info.Title)

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	high, err := store.HighScore(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d   Top run: %d   Runs: %d   Average: %.1f\n",
		store.Get(core.BestKey(gameID)), high, stats.GamesCount, stats.AvgScore)
	return nil
}

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Show the best score of every game",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		best, err := store.BestScores()
		if err != nil {
			return err
		}
		for _, g := range registry.List() {
			fmt.Printf("  %-12s %d\n", g.Title, best[core.BestKey(g.ID)])
		}
		return nil
	},
}
