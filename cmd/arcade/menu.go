package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-minigames/internal/platform/tui"
	"github.com/vovakirdan/tui-minigames/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game, Tab for scores.
Esc in a game returns to the menu.

Examples:
  arcade menu
  arcade menu --fps 30 --mute
  arcade menu --db ./scores.db`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset for every game: easy, normal, hard")
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	env := tui.NewEnv(tui.EnvConfig{
		Store:   store,
		Bell:    bellOutput(),
		Muted:   flagMute,
		Logger:  logger,
		Options: registry.Options{Difficulty: flagDifficulty},
	})

	if err := tui.RunSession(env, runtimeConfig()); err != nil {
		return fmt.Errorf("menu: %w", err)
	}
	return nil
}

// bellOutput is where tones ring locally: the controlling terminal.
func bellOutput() io.Writer {
	return os.Stdout
}
